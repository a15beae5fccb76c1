// Package repository provides the data access layer over MongoDB.
package repository

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common errors for repository operations.
var (
	// ErrAccountNotFound indicates no account matched the given identifier.
	ErrAccountNotFound = errors.New("account not found")
)

// substringRegex builds a case-insensitive substring pattern from a query.
// The query is quoted so metacharacters match literally; this is containment
// matching, not user-supplied regex evaluation.
func substringRegex(q string) primitive.Regex {
	return primitive.Regex{
		Pattern: regexp.QuoteMeta(q),
		Options: "i",
	}
}
