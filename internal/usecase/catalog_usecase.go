package usecase

import (
	"context"

	"github.com/daffahilmyf/dictators-seed/internal/dataset"
	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
	"github.com/daffahilmyf/dictators-seed/internal/domain/repository"
	"github.com/daffahilmyf/dictators-seed/internal/domain/service"
	"github.com/sirupsen/logrus"
)

type Catalog struct {
	repo   repository.CatalogRepository
	sample dataset.Dataset
	log    *logrus.Logger
}

var _ service.CatalogService = (*Catalog)(nil)

func NewCatalog(repo repository.CatalogRepository, sample dataset.Dataset, log *logrus.Logger) *Catalog {
	return &Catalog{repo: repo, sample: sample, log: log}
}

func (c *Catalog) CreateDictator(ctx context.Context, rec entity.DictatorRecord) (entity.Dictator, error) {
	d, err := c.repo.CreateDictator(ctx, rec)
	if err != nil {
		c.log.WithError(err).WithField("username", rec.Username).Warn("create dictator failed")
		return entity.Dictator{}, err
	}
	return d, nil
}

func (c *Catalog) CreateAchievement(ctx context.Context, dictatorID int64, rec entity.AchievementRecord) (entity.Achievement, error) {
	a, err := c.repo.CreateAchievement(ctx, dictatorID, rec)
	if err != nil {
		c.log.WithError(err).WithField("dictator_id", dictatorID).Warn("create achievement failed")
		return entity.Achievement{}, err
	}
	return a, nil
}

func (c *Catalog) GetDictator(ctx context.Context, id int64) (entity.Dictator, error) {
	return c.repo.GetDictator(ctx, id)
}

func (c *Catalog) ListDictators(ctx context.Context) ([]entity.Dictator, error) {
	return c.repo.ListDictators(ctx)
}

func (c *Catalog) ListAchievements(ctx context.Context) ([]entity.Achievement, error) {
	return c.repo.ListAchievements(ctx)
}

// InitSampleData creates every sample dictator that does not exist yet,
// together with its achievements. Calling it twice creates nothing new.
func (c *Catalog) InitSampleData(ctx context.Context) (entity.SampleDataResult, error) {
	var res entity.SampleDataResult
	for _, rec := range c.sample.Dictators() {
		exists, err := c.repo.ExistsByUsername(ctx, rec.Username)
		if err != nil {
			return entity.SampleDataResult{}, err
		}
		if exists {
			continue
		}
		d, err := c.repo.CreateDictator(ctx, rec)
		if err != nil {
			return entity.SampleDataResult{}, err
		}
		res.DictatorsCreated++
		for _, ach := range c.sample.AchievementsFor(rec.Username) {
			if _, err := c.repo.CreateAchievement(ctx, d.ID, ach); err != nil {
				return entity.SampleDataResult{}, err
			}
			res.AchievementsCreated++
		}
	}

	dictators, err := c.repo.ListDictators(ctx)
	if err != nil {
		return entity.SampleDataResult{}, err
	}
	achievements, err := c.repo.ListAchievements(ctx)
	if err != nil {
		return entity.SampleDataResult{}, err
	}
	res.Message = "Sample data initialization completed"
	res.TotalDictators = len(dictators)
	res.TotalAchievements = len(achievements)

	c.log.WithFields(logrus.Fields{
		"dictators_created":    res.DictatorsCreated,
		"achievements_created": res.AchievementsCreated,
	}).Info("sample data initialized")
	return res, nil
}
