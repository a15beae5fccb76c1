package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post is a user-submitted food entry.
// Read-only from this service's perspective.
type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FoodName   string             `bson:"foodName" json:"foodName"`
	Ingredient string             `bson:"ingredient" json:"ingredient"`
	Content    string             `bson:"content" json:"content"`
}
