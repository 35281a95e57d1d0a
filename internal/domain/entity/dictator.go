package entity

import "time"

// DictatorRecord is the create payload for POST /init/dictator.
type DictatorRecord struct {
	Username     string `json:"username" mapstructure:"username"`
	Name         string `json:"name" mapstructure:"name"`
	Country      string `json:"country" mapstructure:"country"`
	Description  string `json:"description" mapstructure:"description"`
	YearsInPower string `json:"yearsInPower" mapstructure:"years_in_power"`
}

// Dictator is a dictator as returned by the API, with its server-assigned id.
type Dictator struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Country      string    `json:"country"`
	Description  string    `json:"description"`
	YearsInPower string    `json:"yearsInPower"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}
