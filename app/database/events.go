package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"valencia-events/app/models"
)

// InsertEvent stores a single event document.
func (s *Store) InsertEvent(ctx context.Context, event *models.Event) error {
	_, err := s.events.InsertOne(ctx, event)
	return err
}

// ListEvents retrieves all events.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	cursor, err := s.events.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventByID retrieves one event by its id, or ErrNotFound.
func (s *Store) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := s.events.FindOne(ctx, bson.M{"id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// EventsByDate retrieves the events whose date field equals date exactly.
func (s *Store) EventsByDate(ctx context.Context, date string) ([]models.Event, error) {
	cursor, err := s.events.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
