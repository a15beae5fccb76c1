package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ngonapp/ngon/internal/model"
	"github.com/ngonapp/ngon/internal/repository"
)

// Account service errors.
var (
	// ErrAccountNotFound indicates no account exists for the identifier.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAccountID indicates the identifier is not a valid ObjectID.
	ErrInvalidAccountID = errors.New("invalid account id")
	// ErrMissingPasswordFields indicates current or new password was blank.
	ErrMissingPasswordFields = errors.New("current and new password are required")
	// ErrPasswordMismatch indicates the supplied current password is wrong.
	// This is an expected rejection, not a system fault.
	ErrPasswordMismatch = errors.New("current password incorrect")
)

// AccountStore is the persistence capability the account service needs.
type AccountStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Account, error)
	FindByIDWithPassword(ctx context.Context, id primitive.ObjectID) (*model.Account, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email *string) (*model.Account, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error
}

// PasswordHasher hashes and verifies passwords with a one-way scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// AccountService implements account lookup, profile update and password
// rotation.
type AccountService struct {
	accounts AccountStore
	hasher   PasswordHasher
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts AccountStore, hasher PasswordHasher) *AccountService {
	return &AccountService{
		accounts: accounts,
		hasher:   hasher,
	}
}

// Get fetches a single account by identifier. The identifier is validated
// before any store access; the returned account never carries the password
// hash.
func (s *AccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidAccountID
	}

	account, err := s.accounts.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// UpdateProfile applies a partial name/email update and returns the
// post-update account. A syntactically invalid identifier cannot match any
// document, so it reports not-found without touching the store.
func (s *AccountService) UpdateProfile(ctx context.Context, id string, name, email *string) (*model.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	account, err := s.accounts.UpdateProfile(ctx, oid, name, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return account, nil
}

// ChangePassword verifies the current password and replaces the stored hash
// with a fresh one computed from the new password. Validation runs before
// any store access.
func (s *AccountService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidAccountID
	}
	if strings.TrimSpace(currentPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return ErrMissingPasswordFields
	}

	account, err := s.accounts.FindByIDWithPassword(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	match, err := s.hasher.Verify(currentPassword, account.Password)
	if err != nil {
		return err
	}
	if !match {
		return ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.accounts.SetPassword(ctx, oid, hash); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	return nil
}
