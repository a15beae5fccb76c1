// Package store provides MongoDB client management and collection helpers.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the service.
const (
	CollectionAccounts = "accounts"
	CollectionRecipes  = "recipes"
	CollectionPosts    = "posts"
)

// Store owns the MongoDB client and the configured database handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB using the supplied URI and verifies connectivity
// with a ping.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the Mongo client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Collection returns a collection handle for the given name.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Accounts returns the accounts collection handle.
func (s *Store) Accounts() *mongo.Collection {
	return s.Collection(CollectionAccounts)
}

// Recipes returns the recipes collection handle.
func (s *Store) Recipes() *mongo.Collection {
	return s.Collection(CollectionRecipes)
}

// Posts returns the posts collection handle.
func (s *Store) Posts() *mongo.Collection {
	return s.Collection(CollectionPosts)
}

// EnsureIndexes creates the foundational indexes. Account email is unique so
// profile updates that collide with an existing address fail at the store,
// matching the schema-level validation the data model relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	accountIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
	}

	if _, err := s.Accounts().Indexes().CreateMany(ctx, accountIndexes); err != nil {
		return fmt.Errorf("create accounts indexes: %w", err)
	}

	return nil
}
