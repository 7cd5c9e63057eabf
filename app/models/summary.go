package models

import "time"

// Summary is a narrative digest of the events in a date range.
type Summary struct {
	ID         string    `json:"id" bson:"id"`
	Summary    string    `json:"summary" bson:"summary"`
	StartDate  string    `json:"start_date" bson:"start_date"`
	EndDate    string    `json:"end_date" bson:"end_date"`
	EventTypes []string  `json:"event_types" bson:"event_types"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
