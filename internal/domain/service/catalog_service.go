package service

import (
	"context"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
)

// CatalogService is what the stand-in API serves.
type CatalogService interface {
	CreateDictator(ctx context.Context, rec entity.DictatorRecord) (entity.Dictator, error)
	CreateAchievement(ctx context.Context, dictatorID int64, rec entity.AchievementRecord) (entity.Achievement, error)
	GetDictator(ctx context.Context, id int64) (entity.Dictator, error)
	ListDictators(ctx context.Context) ([]entity.Dictator, error)
	ListAchievements(ctx context.Context) ([]entity.Achievement, error)
	InitSampleData(ctx context.Context) (entity.SampleDataResult, error)
}
