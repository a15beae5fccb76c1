package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ngonapp/ngon/internal/model"
	"github.com/ngonapp/ngon/internal/store"
)

// Recipes provides read access to the recipes collection.
type Recipes struct {
	coll *mongo.Collection
}

// NewRecipes creates a Recipes repository backed by the given store.
func NewRecipes(s *store.Store) *Recipes {
	return &Recipes{coll: s.Recipes()}
}

// recipeSearchFilter matches recipes whose name or any ingredient contains
// the query as a case-insensitive substring. Applying a regex to the
// ingredients field matches against each element of the array.
func recipeSearchFilter(q string) bson.M {
	re := substringRegex(q)
	return bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"ingredients": re},
	}}
}

// Search returns all recipes matching the query, in the order the store
// returns them.
func (r *Recipes) Search(ctx context.Context, q string) ([]model.Recipe, error) {
	cursor, err := r.coll.Find(ctx, recipeSearchFilter(q))
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}

	recipes := make([]model.Recipe, 0)
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}

	return recipes, nil
}

// Count returns the number of recipes.
func (r *Recipes) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}
