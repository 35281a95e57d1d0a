package dataset

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/daffahilmyf/dictators-seed/internal/domain/entity"
	"github.com/go-faker/faker/v4"
	"github.com/spf13/viper"
)

// Load reads a dataset file in any format viper understands (yaml, json, toml).
//
//	dictators:
//	  - username: napoleon
//	    name: Napoleon Bonaparte
//	    country: France
//	    description: ...
//	    years_in_power: 1799-1815
//	achievements:
//	  napoleon:
//	    - title: Napoleonic Code
//	      description: ...
//	      year: 1804
func Load(path string) (Dataset, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Dataset{}, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var dictators []entity.DictatorRecord
	if err := v.UnmarshalKey("dictators", &dictators); err != nil {
		return Dataset{}, fmt.Errorf("dataset: decode dictators: %w", err)
	}
	var achievements map[string][]entity.AchievementRecord
	if err := v.UnmarshalKey("achievements", &achievements); err != nil {
		return Dataset{}, fmt.Errorf("dataset: decode achievements: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return New(name, dictators, achievements)
}

// WithSynthetic returns a copy of base extended by n generated dictators, each
// with one achievement. A zero seed picks a time-based one.
func WithSynthetic(base Dataset, n int, seed int64) (Dataset, error) {
	if n <= 0 {
		return base, nil
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	faker.SetRandomSource(faker.NewSafeSource(rand.NewSource(seed)))

	dictators := base.Dictators()
	achievements := make(map[string][]entity.AchievementRecord, len(base.achievements)+n)
	for key, recs := range base.achievements {
		achievements[key] = recs
	}

	for i := 0; i < n; i++ {
		first := faker.FirstName()
		last := faker.LastName()
		username := fmt.Sprintf("%s-%s-%d", strings.ToLower(first), strings.ToLower(last), i+1)
		start := 1000 + rng.Intn(1000)
		end := start + 1 + rng.Intn(40)

		dictators = append(dictators, entity.DictatorRecord{
			Username:     username,
			Name:         fmt.Sprintf("%s %s", first, last),
			Country:      fmt.Sprintf("Republic of %s", last),
			Description:  faker.Sentence(),
			YearsInPower: fmt.Sprintf("%d-%d", start, end),
		})
		achievements[username] = []entity.AchievementRecord{{
			Title:       strings.TrimSuffix(faker.Sentence(), "."),
			Description: faker.Paragraph(),
			Year:        start + rng.Intn(end-start+1),
		}}
	}

	return New(base.name+"+synthetic", dictators, achievements)
}
