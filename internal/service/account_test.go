package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ngonapp/ngon/internal/auth"
	"github.com/ngonapp/ngon/internal/model"
	"github.com/ngonapp/ngon/internal/repository"
)

type stubAccountStore struct {
	account *model.Account
	findErr error

	updated   *model.Account
	updateErr error
	gotName   *string
	gotEmail  *string

	setHash    string
	setErr     error
	storeCalls int
}

func (s *stubAccountStore) FindByID(context.Context, primitive.ObjectID) (*model.Account, error) {
	s.storeCalls++
	return s.account, s.findErr
}

func (s *stubAccountStore) FindByIDWithPassword(context.Context, primitive.ObjectID) (*model.Account, error) {
	s.storeCalls++
	return s.account, s.findErr
}

func (s *stubAccountStore) UpdateProfile(_ context.Context, _ primitive.ObjectID, name, email *string) (*model.Account, error) {
	s.storeCalls++
	s.gotName = name
	s.gotEmail = email
	return s.updated, s.updateErr
}

func (s *stubAccountStore) SetPassword(_ context.Context, _ primitive.ObjectID, hash string) error {
	s.storeCalls++
	s.setHash = hash
	return s.setErr
}

// testHasher uses a deliberately light work factor so tests stay fast.
func testHasher() *auth.Hasher {
	return auth.NewHasher(auth.Params{Time: 1, Memory: 8 * 1024, Threads: 1})
}

func TestGet_InvalidID(t *testing.T) {
	t.Parallel()

	store := &stubAccountStore{}
	svc := NewAccountService(store, testHasher())

	_, err := svc.Get(context.Background(), "not-an-object-id")

	require.ErrorIs(t, err, ErrInvalidAccountID)
	assert.Zero(t, store.storeCalls, "invalid id must not reach the store")
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	store := &stubAccountStore{findErr: repository.ErrAccountNotFound}
	svc := NewAccountService(store, testHasher())

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())

	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGet_Success(t *testing.T) {
	t.Parallel()

	want := &model.Account{ID: primitive.NewObjectID(), Name: "Nguyen Van A", Email: "a@example.com"}
	store := &stubAccountStore{account: want}
	svc := NewAccountService(store, testHasher())

	got, err := svc.Get(context.Background(), want.ID.Hex())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateProfile_InvalidIDReportsNotFound(t *testing.T) {
	t.Parallel()

	store := &stubAccountStore{}
	svc := NewAccountService(store, testHasher())

	_, err := svc.UpdateProfile(context.Background(), "zzz", nil, nil)

	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.Zero(t, store.storeCalls, "unparseable id must not reach the store")
}

func TestUpdateProfile_PassesPatchThrough(t *testing.T) {
	t.Parallel()

	name := "Nguyen Van B"
	updated := &model.Account{ID: primitive.NewObjectID(), Name: name}
	store := &stubAccountStore{updated: updated}
	svc := NewAccountService(store, testHasher())

	got, err := svc.UpdateProfile(context.Background(), updated.ID.Hex(), &name, nil)

	require.NoError(t, err)
	assert.Equal(t, updated, got)
	require.NotNil(t, store.gotName)
	assert.Equal(t, name, *store.gotName)
	assert.Nil(t, store.gotEmail)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	t.Parallel()

	store := &stubAccountStore{updateErr: repository.ErrAccountNotFound}
	svc := NewAccountService(store, testHasher())

	_, err := svc.UpdateProfile(context.Background(), primitive.NewObjectID().Hex(), nil, nil)

	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestChangePassword_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		id      string
		current string
		newPass string
		wantErr error
	}{
		{"invalid id", "nope", "old", "new", ErrInvalidAccountID},
		{"blank current", primitive.NewObjectID().Hex(), "  ", "new", ErrMissingPasswordFields},
		{"blank new", primitive.NewObjectID().Hex(), "old", "", ErrMissingPasswordFields},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &stubAccountStore{}
			svc := NewAccountService(store, testHasher())

			err := svc.ChangePassword(context.Background(), tc.id, tc.current, tc.newPass)

			require.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, store.storeCalls, "validation errors must not reach the store")
		})
	}
}

func TestChangePassword_WrongCurrentLeavesHashUntouched(t *testing.T) {
	t.Parallel()

	hasher := testHasher()
	hash, err := hasher.Hash("correct-password")
	require.NoError(t, err)

	store := &stubAccountStore{account: &model.Account{
		ID:       primitive.NewObjectID(),
		Password: hash,
	}}
	svc := NewAccountService(store, hasher)

	err = svc.ChangePassword(context.Background(), store.account.ID.Hex(), "wrong-password", "new-password")

	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Empty(t, store.setHash, "hash must not be replaced on mismatch")
}

func TestChangePassword_Success(t *testing.T) {
	t.Parallel()

	hasher := testHasher()
	hash, err := hasher.Hash("old-password")
	require.NoError(t, err)

	store := &stubAccountStore{account: &model.Account{
		ID:       primitive.NewObjectID(),
		Password: hash,
	}}
	svc := NewAccountService(store, hasher)

	err = svc.ChangePassword(context.Background(), store.account.ID.Hex(), "old-password", "new-password")
	require.NoError(t, err)

	require.NotEmpty(t, store.setHash)
	assert.NotEqual(t, hash, store.setHash)

	// The persisted hash must verify against the new password.
	match, err := hasher.Verify("new-password", store.setHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestChangePassword_AccountMissing(t *testing.T) {
	t.Parallel()

	store := &stubAccountStore{findErr: repository.ErrAccountNotFound}
	svc := NewAccountService(store, testHasher())

	err := svc.ChangePassword(context.Background(), primitive.NewObjectID().Hex(), "old", "new")

	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestChangePassword_StoreFaultPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("socket closed")
	store := &stubAccountStore{findErr: boom}
	svc := NewAccountService(store, testHasher())

	err := svc.ChangePassword(context.Background(), primitive.NewObjectID().Hex(), "old", "new")

	require.ErrorIs(t, err, boom)
}
