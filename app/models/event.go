package models

import "time"

// Location is where an event takes place.
type Location struct {
	Name     string `json:"name" bson:"name"`
	Address  string `json:"address" bson:"address"`
	District string `json:"district" bson:"district"`
}

// Source attributes an event to the site it was found on.
type Source struct {
	URL      string `json:"url" bson:"url"`
	MainURL  string `json:"mainUrl" bson:"mainUrl"`
	Provider string `json:"provider" bson:"provider"`
}

// Event represents a single scheduled happening in the city. Events are
// created by seeding or by the generation pipeline and never updated after.
type Event struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Date        string    `json:"date" bson:"date"` // YYYY-MM-DD
	Location    Location  `json:"location" bson:"location"`
	Description string    `json:"description" bson:"description"`
	ImageURL    string    `json:"imageUrl" bson:"imageUrl"`
	Source      Source    `json:"source" bson:"source"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
