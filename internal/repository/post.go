package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ngonapp/ngon/internal/model"
	"github.com/ngonapp/ngon/internal/store"
)

// Posts provides read access to the posts collection.
type Posts struct {
	coll *mongo.Collection
}

// NewPosts creates a Posts repository backed by the given store.
func NewPosts(s *store.Store) *Posts {
	return &Posts{coll: s.Posts()}
}

// postSearchFilter matches posts whose food name, ingredient text or content
// contains the query as a case-insensitive substring.
func postSearchFilter(q string) bson.M {
	re := substringRegex(q)
	return bson.M{"$or": bson.A{
		bson.M{"foodName": re},
		bson.M{"ingredient": re},
		bson.M{"content": re},
	}}
}

// Search returns all posts matching the query, in the order the store
// returns them.
func (r *Posts) Search(ctx context.Context, q string) ([]model.Post, error) {
	cursor, err := r.coll.Find(ctx, postSearchFilter(q))
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	posts := make([]model.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return posts, nil
}

// Count returns the number of posts.
func (r *Posts) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
