// Package model defines domain entities for the application.
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account represents a user identity record.
// The password field holds an argon2id hash in PHC string format and is
// excluded from JSON serialization; API responses must never carry it.
type Account struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name         string               `bson:"name" json:"name"`
	Email        string               `bson:"email" json:"email"`
	Password     string               `bson:"password,omitempty" json:"-"`
	SavedRecipes []primitive.ObjectID `bson:"savedRecipes,omitempty" json:"savedRecipes"`
}
