package repository

import (
	"context"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
)

// CatalogRepository backs the stand-in API.
type CatalogRepository interface {
	CreateDictator(ctx context.Context, rec entity.DictatorRecord) (entity.Dictator, error)
	CreateAchievement(ctx context.Context, dictatorID int64, rec entity.AchievementRecord) (entity.Achievement, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	GetDictator(ctx context.Context, id int64) (entity.Dictator, error)
	ListDictators(ctx context.Context) ([]entity.Dictator, error)
	ListAchievements(ctx context.Context) ([]entity.Achievement, error)
}
