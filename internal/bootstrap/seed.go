package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/daffahilmyf/dictators-seed/internal/config"
	"github.com/daffahilmyf/dictators-seed/internal/dataset"
	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
	"github.com/daffahilmyf/dictators-seed/internal/infra/apiclient"
	"github.com/daffahilmyf/dictators-seed/internal/infra/messaging"
	"github.com/daffahilmyf/dictators-seed/internal/usecase"
	"github.com/sirupsen/logrus"
)

const (
	ExitOK          = 0
	ExitUnreachable = 1
	ExitSeedFailed  = 2
)

// Seed runs the whole seeding flow against cfg.API and writes the summary to
// out. The returned error is non-nil only for setup failures and for an
// unreachable API (usecase.ErrServiceUnavailable).
func Seed(ctx context.Context, cfg config.Config, out io.Writer) (entity.Report, error) {
	log, err := BuildLogger(cfg, out)
	if err != nil {
		return entity.Report{}, err
	}

	data, err := LoadDataset(cfg.Seed)
	if err != nil {
		return entity.Report{}, err
	}
	log.WithFields(logrus.Fields{
		"dataset":      data.Name(),
		"dictators":    data.Len(),
		"achievements": data.AchievementCount(),
		"base_url":     cfg.API.BaseURL,
	}).Info("seed: starting")

	client := apiclient.New(apiclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.RequestTimeout,
	})
	seeder := usecase.NewSeeder(client, data, log, usecase.Options{
		BaseURL:          cfg.API.BaseURL,
		HealthTimeout:    cfg.API.HealthTimeout,
		SkipBulk:         cfg.Seed.SkipBulk,
		Verify:           cfg.Verify.Enabled,
		VerifyDictatorID: cfg.Verify.DictatorID,
	})

	report, runErr := seeder.Run(ctx)
	WriteSummary(out, report)

	if runErr == nil {
		publishReport(ctx, cfg, report, log)
	}
	return report, runErr
}

// Verify runs only the read-only checks.
func Verify(ctx context.Context, cfg config.Config, out io.Writer) (entity.Report, error) {
	log, err := BuildLogger(cfg, out)
	if err != nil {
		return entity.Report{}, err
	}
	client := apiclient.New(apiclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.RequestTimeout,
	})
	seeder := usecase.NewSeeder(client, dataset.Default(), log, usecase.Options{
		BaseURL:          cfg.API.BaseURL,
		VerifyDictatorID: cfg.Verify.DictatorID,
	})
	report := entity.Report{BaseURL: cfg.API.BaseURL, Path: entity.PathNone}
	report.Verification = seeder.Verify(ctx)
	WriteSummary(out, report)
	return report, nil
}

// LoadDataset resolves the dataset from the seed configuration: a dataset
// file when given, the built-in set otherwise, plus any synthetic records.
func LoadDataset(cfg config.Seed) (dataset.Dataset, error) {
	data := dataset.Default()
	if cfg.DatasetFile != "" {
		loaded, err := dataset.Load(cfg.DatasetFile)
		if err != nil {
			return dataset.Dataset{}, err
		}
		data = loaded
	}
	if cfg.SyntheticCount > 0 {
		extended, err := dataset.WithSynthetic(data, cfg.SyntheticCount, cfg.SyntheticSeed)
		if err != nil {
			return dataset.Dataset{}, fmt.Errorf("synthetic dataset: %w", err)
		}
		data = extended
	}
	return data, nil
}

// ExitCode maps a seeding outcome to the process exit status. Any error from
// Seed means nothing was written. Fallback failures only count when strict
// is set; verification never counts.
func ExitCode(report entity.Report, err error, strict bool) int {
	if err != nil {
		return ExitUnreachable
	}
	if strict && report.SeedFailures() > 0 {
		return ExitSeedFailed
	}
	return ExitOK
}

func publishReport(ctx context.Context, cfg config.Config, report entity.Report, log logrus.FieldLogger) {
	client, err := messaging.NewNATS(ctx, cfg.NATS)
	if err != nil {
		log.WithError(err).Warn("seed: report sink unavailable")
		return
	}
	defer client.Close()
	if err := client.PublishReport(ctx, report); err != nil {
		log.WithError(err).Warn("seed: publish report failed")
	}
}
