package entity

import "time"

type AchievementRecord struct {
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	Year        int    `json:"year" mapstructure:"year"`
}

type Achievement struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

// SampleDataResult is the body of a successful POST /init/sample-data.
type SampleDataResult struct {
	Message             string `json:"message,omitempty"`
	DictatorsCreated    int    `json:"dictatorsCreated"`
	AchievementsCreated int    `json:"achievementsCreated"`
	TotalDictators      int    `json:"totalDictators"`
	TotalAchievements   int    `json:"totalAchievements"`
}
