package entity

import "time"

type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeTransportError OutcomeKind = "transport_error"
	OutcomeStatusError    OutcomeKind = "status_error"
	OutcomeSkipped        OutcomeKind = "skipped"
)

// Outcome is the tagged result of a single API operation.
type Outcome struct {
	Operation  string      `json:"operation"`
	Target     string      `json:"target,omitempty"`
	Kind       OutcomeKind `json:"kind"`
	StatusCode int         `json:"status_code,omitempty"`
	Detail     string      `json:"detail,omitempty"`
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

func (o Outcome) Failed() bool {
	return o.Kind == OutcomeTransportError || o.Kind == OutcomeStatusError
}

type Path string

const (
	PathNone     Path = "none"
	PathBulk     Path = "bulk"
	PathFallback Path = "fallback"
)

// Report aggregates every outcome of one seeding run.
type Report struct {
	RunID        string            `json:"run_id"`
	BaseURL      string            `json:"base_url"`
	StartedAt    time.Time         `json:"started_at"`
	FinishedAt   time.Time         `json:"finished_at"`
	Health       Outcome           `json:"health"`
	Path         Path              `json:"path"`
	Bulk         Outcome           `json:"bulk"`
	BulkResult   *SampleDataResult `json:"bulk_result,omitempty"`
	Dictators    []Outcome         `json:"dictators,omitempty"`
	Achievements []Outcome         `json:"achievements,omitempty"`
	Verification []Outcome         `json:"verification,omitempty"`
}

// SeedFailures counts failed create calls on the fallback path.
// Bulk and verification failures are not counted.
func (r Report) SeedFailures() int {
	n := 0
	for _, o := range r.Dictators {
		if o.Failed() {
			n++
		}
	}
	for _, o := range r.Achievements {
		if o.Failed() {
			n++
		}
	}
	return n
}

func (r Report) VerifyFailures() int {
	n := 0
	for _, o := range r.Verification {
		if o.Failed() {
			n++
		}
	}
	return n
}

func (r Report) Created() (dictators, achievements int) {
	if r.Path == PathBulk && r.BulkResult != nil {
		return r.BulkResult.DictatorsCreated, r.BulkResult.AchievementsCreated
	}
	for _, o := range r.Dictators {
		if o.OK() {
			dictators++
		}
	}
	for _, o := range r.Achievements {
		if o.OK() {
			achievements++
		}
	}
	return dictators, achievements
}
