package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/daffahilmyf/dictators-seed/internal/dataset"
	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
	"github.com/daffahilmyf/dictators-seed/internal/domain/service"
	"github.com/daffahilmyf/dictators-seed/internal/infra/apiclient"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrServiceUnavailable is returned by Run when the health probe fails.
// Nothing has been written when it is returned.
var ErrServiceUnavailable = errors.New("api is not reachable")

type Options struct {
	BaseURL       string
	HealthTimeout time.Duration
	// SkipBulk forces the per-record path. Non-default datasets always skip
	// bulk, since the server only knows how to create the built-in set.
	SkipBulk         bool
	Verify           bool
	VerifyDictatorID int64
}

type Seeder struct {
	api  service.DictatorsAPI
	data dataset.Dataset
	log  *logrus.Logger
	opts Options
}

var _ service.SeederService = (*Seeder)(nil)

func NewSeeder(api service.DictatorsAPI, data dataset.Dataset, log *logrus.Logger, opts Options) *Seeder {
	if opts.VerifyDictatorID <= 0 {
		opts.VerifyDictatorID = 1
	}
	return &Seeder{api: api, data: data, log: log, opts: opts}
}

// Run executes probe, bulk-or-fallback and verification in order.
func (s *Seeder) Run(ctx context.Context) (entity.Report, error) {
	report := entity.Report{
		RunID:     uuid.NewString(),
		BaseURL:   s.opts.BaseURL,
		StartedAt: time.Now().UTC(),
		Path:      entity.PathNone,
	}

	report.Health = s.Probe(ctx)
	if !report.Health.OK() {
		report.FinishedAt = time.Now().UTC()
		return report, ErrServiceUnavailable
	}

	if s.opts.SkipBulk || !s.data.IsDefault() {
		report.Bulk = entity.Outcome{Operation: "bulk", Kind: entity.OutcomeSkipped, Detail: "dataset " + s.data.Name()}
		s.log.WithField("dataset", s.data.Name()).Info("seed: bulk initialization skipped")
	} else {
		report.Bulk, report.BulkResult = s.Bulk(ctx)
	}

	if report.Bulk.OK() {
		report.Path = entity.PathBulk
	} else {
		if report.Bulk.Failed() {
			s.log.Warn("seed: bulk initialization failed, falling back to per-record creation")
		}
		report.Path = entity.PathFallback
		report.Dictators, report.Achievements = s.Fallback(ctx)
	}

	if s.opts.Verify {
		report.Verification = s.Verify(ctx)
	}
	report.FinishedAt = time.Now().UTC()
	return report, nil
}

func (s *Seeder) Probe(ctx context.Context) entity.Outcome {
	if s.opts.HealthTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.HealthTimeout)
		defer cancel()
	}
	err := s.api.Ping(ctx)
	out := outcome("health", "GET /dictators", err)
	if err != nil {
		s.log.WithError(err).Error("seed: api is not accessible")
		return out
	}
	s.log.Info("seed: api is accessible")
	return out
}

func (s *Seeder) Bulk(ctx context.Context) (entity.Outcome, *entity.SampleDataResult) {
	res, err := s.api.InitSampleData(ctx)
	out := outcome("bulk", "POST /init/sample-data", err)
	if err != nil {
		s.log.WithError(err).Warn("seed: failed to initialize sample data")
		return out, nil
	}
	s.log.WithFields(logrus.Fields{
		"dictators_created":    res.DictatorsCreated,
		"achievements_created": res.AchievementsCreated,
		"total_dictators":      res.TotalDictators,
		"total_achievements":   res.TotalAchievements,
	}).Info("seed: sample data initialized")
	return out, &res
}

// Fallback creates every dictator in table order and, after each successful
// create, that dictator's achievements. A failure never stops the loop.
func (s *Seeder) Fallback(ctx context.Context) (dictators, achievements []entity.Outcome) {
	for _, rec := range s.data.Dictators() {
		created, err := s.api.CreateDictator(ctx, rec)
		dictators = append(dictators, outcome("create_dictator", rec.Username, err))
		entry := s.log.WithField("username", rec.Username)
		if err != nil {
			entry.WithError(err).Error("seed: failed to create dictator")
			continue
		}
		entry.WithField("dictator_id", created.ID).Info("seed: created dictator")

		username := created.Username
		if username == "" {
			username = rec.Username
		}
		for _, ach := range s.data.AchievementsFor(username) {
			_, err := s.api.CreateAchievement(ctx, created.ID, ach)
			achievements = append(achievements, outcome("create_achievement", fmt.Sprintf("%s/%s", username, ach.Title), err))
			achEntry := entry.WithFields(logrus.Fields{"dictator_id": created.ID, "title": ach.Title})
			if err != nil {
				achEntry.WithError(err).Error("seed: failed to create achievement")
				continue
			}
			achEntry.Info("seed: created achievement")
		}
	}
	return dictators, achievements
}

// Verify runs the read-only checks. Results are diagnostic only.
func (s *Seeder) Verify(ctx context.Context) []entity.Outcome {
	results := make([]entity.Outcome, 0, 3)

	dictators, err := s.api.ListDictators(ctx)
	o := outcome("verify", "GET /dictators", err)
	if err == nil {
		o.Detail = fmt.Sprintf("found %d dictators", len(dictators))
	}
	results = append(results, s.logVerify(o, err))

	achievements, err := s.api.ListAchievements(ctx)
	o = outcome("verify", "GET /achievements", err)
	if err == nil {
		o.Detail = fmt.Sprintf("found %d achievements", len(achievements))
	}
	results = append(results, s.logVerify(o, err))

	id := s.opts.VerifyDictatorID
	dictator, err := s.api.GetDictator(ctx, id)
	o = outcome("verify", "GET /dictators/"+strconv.FormatInt(id, 10), err)
	if err == nil {
		name := dictator.Name
		if name == "" {
			name = "Unknown"
		}
		o.Detail = "found: " + name
	}
	results = append(results, s.logVerify(o, err))

	return results
}

func (s *Seeder) logVerify(o entity.Outcome, err error) entity.Outcome {
	entry := s.log.WithField("endpoint", o.Target)
	if err != nil {
		entry.WithError(err).Warn("verify: request failed")
		return o
	}
	entry.Info("verify: " + o.Detail)
	return o
}

func outcome(op, target string, err error) entity.Outcome {
	o := entity.Outcome{Operation: op, Target: target, Kind: entity.OutcomeSuccess}
	if err == nil {
		return o
	}
	o.Detail = err.Error()
	var statusErr *apiclient.StatusError
	if errors.As(err, &statusErr) {
		o.Kind = entity.OutcomeStatusError
		o.StatusCode = statusErr.StatusCode
		o.Detail = statusErr.Body
		if o.Detail == "" {
			o.Detail = http.StatusText(statusErr.StatusCode)
		}
		return o
	}
	o.Kind = entity.OutcomeTransportError
	return o
}
