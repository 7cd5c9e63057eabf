package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotFound is returned by single-document lookups with no match.
var ErrNotFound = errors.New("not found")

// Store wraps the mongo connection and the three collections this service
// uses. It is constructed once in main and passed to the route packages;
// nothing reaches it through package globals.
type Store struct {
	client    *mongo.Client
	events    *mongo.Collection
	summaries *mongo.Collection
	admin     *mongo.Collection
}

// Connect opens the mongo connection, verifies it with a ping and returns
// the ready Store.
func Connect(ctx context.Context, mongoURL, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	return &Store{
		client:    client,
		events:    db.Collection("events"),
		summaries: db.Collection("summaries"),
		admin:     db.Collection("admin"),
	}, nil
}

// Close disconnects from mongo.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
