// Package dataset holds the records pushed to the API by the fallback seeding
// path. A Dataset is immutable once built; accessors hand out copies.
package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
)

var ErrEmpty = errors.New("dataset: no dictators")

type Dataset struct {
	name         string
	builtin      bool
	dictators    []entity.DictatorRecord
	achievements map[string][]entity.AchievementRecord
}

// New validates and copies the given tables. Achievement keys are matched
// against usernames case-insensitively.
func New(name string, dictators []entity.DictatorRecord, achievements map[string][]entity.AchievementRecord) (Dataset, error) {
	if len(dictators) == 0 {
		return Dataset{}, ErrEmpty
	}
	ds := Dataset{
		name:         name,
		dictators:    make([]entity.DictatorRecord, len(dictators)),
		achievements: make(map[string][]entity.AchievementRecord, len(achievements)),
	}
	copy(ds.dictators, dictators)

	seen := make(map[string]struct{}, len(dictators))
	for i, d := range dictators {
		key := normalize(d.Username)
		if key == "" {
			return Dataset{}, fmt.Errorf("dataset: dictator %d has no username", i)
		}
		if _, ok := seen[key]; ok {
			return Dataset{}, fmt.Errorf("dataset: duplicate username %q", d.Username)
		}
		seen[key] = struct{}{}
	}
	for username, recs := range achievements {
		key := normalize(username)
		if _, ok := seen[key]; !ok {
			return Dataset{}, fmt.Errorf("dataset: achievements for unknown username %q", username)
		}
		cp := make([]entity.AchievementRecord, len(recs))
		copy(cp, recs)
		ds.achievements[key] = append(ds.achievements[key], cp...)
	}
	return ds, nil
}

func (d Dataset) Name() string {
	return d.name
}

// IsDefault reports whether d is the built-in sample set, which is the only
// set the server-side bulk endpoint knows how to create.
func (d Dataset) IsDefault() bool {
	return d.builtin
}

func (d Dataset) Dictators() []entity.DictatorRecord {
	out := make([]entity.DictatorRecord, len(d.dictators))
	copy(out, d.dictators)
	return out
}

func (d Dataset) AchievementsFor(username string) []entity.AchievementRecord {
	recs := d.achievements[normalize(username)]
	if len(recs) == 0 {
		return nil
	}
	out := make([]entity.AchievementRecord, len(recs))
	copy(out, recs)
	return out
}

func (d Dataset) Len() int {
	return len(d.dictators)
}

func (d Dataset) AchievementCount() int {
	n := 0
	for _, recs := range d.achievements {
		n += len(recs)
	}
	return n
}

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
