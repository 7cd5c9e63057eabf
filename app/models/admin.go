package models

import "time"

// AdminConfigID is the fixed document id of the singleton config, so an
// update is always a deterministic replace-by-key.
const AdminConfigID = "admin-config"

// AdminConfig is the singleton settings document: the city being listed,
// the OpenAI credential, and the two prompt templates used by the
// generation pipeline. Templates carry {{start_date}} and {{end_date}}
// placeholders.
type AdminConfig struct {
	ID            string    `json:"id" bson:"id"`
	City          string    `json:"city" bson:"city"`
	Categories    []string  `json:"categories" bson:"categories"`
	OpenAIAPIKey  string    `json:"openai_api_key" bson:"openai_api_key"`
	EventsPrompt  string    `json:"events_prompt" bson:"events_prompt"`
	SummaryPrompt string    `json:"summary_prompt" bson:"summary_prompt"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GenerateRequest is the body of both generation endpoints. Dates are
// inclusive YYYY-MM-DD strings.
type GenerateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
