package service

import (
	"context"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
)

// DictatorsAPI is the remote endpoint contract the seeder consumes.
type DictatorsAPI interface {
	// Ping checks that GET /dictators answers 200. The body is not read.
	Ping(ctx context.Context) error
	ListDictators(ctx context.Context) ([]entity.Dictator, error)
	GetDictator(ctx context.Context, id int64) (entity.Dictator, error)
	ListAchievements(ctx context.Context) ([]entity.Achievement, error)
	CreateDictator(ctx context.Context, rec entity.DictatorRecord) (entity.Dictator, error)
	CreateAchievement(ctx context.Context, dictatorID int64, rec entity.AchievementRecord) (entity.Achievement, error)
	InitSampleData(ctx context.Context) (entity.SampleDataResult, error)
}
