package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"valencia-events/app/models"
)

// InsertSummary stores a single summary document.
func (s *Store) InsertSummary(ctx context.Context, summary *models.Summary) error {
	_, err := s.summaries.InsertOne(ctx, summary)
	return err
}

// ListSummaries retrieves all summaries.
func (s *Store) ListSummaries(ctx context.Context) ([]models.Summary, error) {
	cursor, err := s.summaries.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []models.Summary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// LatestSummary retrieves the most recently created summary, or ErrNotFound
// when the collection is empty.
func (s *Store) LatestSummary(ctx context.Context) (*models.Summary, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var summary models.Summary
	err := s.summaries.FindOne(ctx, bson.M{}, opts).Decode(&summary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
