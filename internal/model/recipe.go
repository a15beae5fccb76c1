package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recipe is a named dish with an ordered list of ingredients.
// Read-only from this service's perspective.
type Recipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Ingredients []string           `bson:"ingredients" json:"ingredients"`
}
