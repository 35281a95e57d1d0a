package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
	"github.com/daffahilmyf/dictators-seed/internal/domain/repository"
)

type achievementRow struct {
	entity.Achievement
	dictatorID int64
}

// CatalogRepository keeps dictators and achievements in process memory.
// Ids are assigned sequentially from 1, like an identity column.
type CatalogRepository struct {
	mu           sync.RWMutex
	dictators    []entity.Dictator
	achievements []achievementRow
	byUsername   map[string]int64
	now          func() time.Time
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		byUsername: make(map[string]int64),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *CatalogRepository) CreateDictator(ctx context.Context, rec entity.DictatorRecord) (entity.Dictator, error) {
	if err := ctx.Err(); err != nil {
		return entity.Dictator{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.TrimSpace(rec.Username)
	if _, ok := r.byUsername[key]; ok {
		return entity.Dictator{}, repository.ErrDictatorExists
	}
	now := r.now()
	d := entity.Dictator{
		ID:           int64(len(r.dictators) + 1),
		Username:     key,
		Name:         rec.Name,
		Country:      rec.Country,
		Description:  rec.Description,
		YearsInPower: rec.YearsInPower,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.dictators = append(r.dictators, d)
	r.byUsername[key] = d.ID
	return d, nil
}

func (r *CatalogRepository) CreateAchievement(ctx context.Context, dictatorID int64, rec entity.AchievementRecord) (entity.Achievement, error) {
	if err := ctx.Err(); err != nil {
		return entity.Achievement{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if dictatorID <= 0 || dictatorID > int64(len(r.dictators)) {
		return entity.Achievement{}, repository.ErrNotFound
	}
	now := r.now()
	a := entity.Achievement{
		ID:          int64(len(r.achievements) + 1),
		Title:       rec.Title,
		Description: rec.Description,
		Year:        rec.Year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.achievements = append(r.achievements, achievementRow{Achievement: a, dictatorID: dictatorID})
	return a, nil
}

func (r *CatalogRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byUsername[strings.TrimSpace(username)]
	return ok, nil
}

func (r *CatalogRepository) GetDictator(ctx context.Context, id int64) (entity.Dictator, error) {
	if err := ctx.Err(); err != nil {
		return entity.Dictator{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id <= 0 || id > int64(len(r.dictators)) {
		return entity.Dictator{}, repository.ErrNotFound
	}
	return r.dictators[id-1], nil
}

func (r *CatalogRepository) ListDictators(ctx context.Context) ([]entity.Dictator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Dictator, len(r.dictators))
	copy(out, r.dictators)
	return out, nil
}

func (r *CatalogRepository) ListAchievements(ctx context.Context) ([]entity.Achievement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Achievement, len(r.achievements))
	for i, row := range r.achievements {
		out[i] = row.Achievement
	}
	return out, nil
}
