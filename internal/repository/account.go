package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ngonapp/ngon/internal/model"
	"github.com/ngonapp/ngon/internal/store"
)

// Accounts provides access to the accounts collection.
type Accounts struct {
	coll *mongo.Collection
}

// NewAccounts creates an Accounts repository backed by the given store.
func NewAccounts(s *store.Store) *Accounts {
	return &Accounts{coll: s.Accounts()}
}

// passwordOmitted projects the password hash out of read results.
var passwordOmitted = bson.M{"password": 0}

// FindByID retrieves an account by its ObjectID with the password hash
// projected out.
func (r *Accounts) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Account, error) {
	var account model.Account
	err := r.coll.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(passwordOmitted),
	).Decode(&account)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &account, nil
}

// FindByIDWithPassword retrieves an account including its password hash.
// Only the password-rotation flow may use this.
func (r *Accounts) FindByIDWithPassword(ctx context.Context, id primitive.ObjectID) (*model.Account, error) {
	var account model.Account
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&account)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &account, nil
}

// UpdateProfile applies a partial name/email update and returns the
// post-update document without the password hash. Absent fields are left
// untouched; with no fields supplied the update degenerates to a plain read,
// since MongoDB rejects an empty $set.
func (r *Accounts) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email *string) (*model.Account, error) {
	set := bson.M{}
	if name != nil {
		set["name"] = *name
	}
	if email != nil {
		set["email"] = *email
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(passwordOmitted)

	var account model.Account
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).
		Decode(&account)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &account, nil
}

// SetPassword replaces the stored password hash atomically.
func (r *Accounts) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": hash}},
	)
	if err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Count returns the number of accounts.
func (r *Accounts) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
