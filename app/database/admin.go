package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"valencia-events/app/models"
)

// GetAdminConfig retrieves the singleton admin config, or ErrNotFound when
// none has been written yet.
func (s *Store) GetAdminConfig(ctx context.Context) (*models.AdminConfig, error) {
	var cfg models.AdminConfig
	err := s.admin.FindOne(ctx, bson.M{"id": models.AdminConfigID}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveAdminConfig replaces the singleton config wholesale. The document id
// is forced to the fixed key and the update timestamp is refreshed, so the
// replace is deterministic regardless of what the caller sent.
func (s *Store) SaveAdminConfig(ctx context.Context, cfg *models.AdminConfig) error {
	cfg.ID = models.AdminConfigID
	cfg.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := s.admin.ReplaceOne(ctx, bson.M{"id": models.AdminConfigID}, cfg, opts)
	return err
}
