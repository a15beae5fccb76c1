package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_Format(t *testing.T) {
	t.Parallel()

	h := NewHasher(DefaultParams())

	hash, err := h.Hash("mat-khau-bi-mat")
	require.NoError(t, err)

	// PHC format: $argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v="), "hash should be in PHC format: %s", hash)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	assert.Equal(t, "argon2id", parts[1])
	assert.Equal(t, "m=65536,t=3,p=4", parts[3])
}

func TestHash_ConfigurableWorkFactor(t *testing.T) {
	t.Parallel()

	h := NewHasher(Params{Time: 1, Memory: 16 * 1024, Threads: 2})

	hash, err := h.Hash("mat-khau-bi-mat")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	assert.Equal(t, "m=16384,t=1,p=2", parts[3])

	// The hash must still verify against the same hasher.
	match, err := h.Verify("mat-khau-bi-mat", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestHash_Uniqueness(t *testing.T) {
	t.Parallel()

	h := NewHasher(DefaultParams())

	hash1, err := h.Hash("the-same-password")
	require.NoError(t, err)
	hash2, err := h.Hash("the-same-password")
	require.NoError(t, err)

	// Random salts mean identical passwords never produce identical hashes.
	assert.NotEqual(t, hash1, hash2)

	match1, _ := h.Verify("the-same-password", hash1)
	match2, _ := h.Verify("the-same-password", hash2)
	assert.True(t, match1)
	assert.True(t, match2)
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher(DefaultParams())

	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	match, err := h.Verify("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestVerify_AcrossWorkFactorChange(t *testing.T) {
	t.Parallel()

	old := NewHasher(Params{Time: 1, Memory: 8 * 1024, Threads: 1})
	hash, err := old.Hash("mat-khau")
	require.NoError(t, err)

	// A hasher configured with a heavier work factor still verifies hashes
	// produced under the old parameters.
	current := NewHasher(DefaultParams())
	match, err := current.Verify("mat-khau", hash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(DefaultParams())

	cases := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not phc", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := h.Verify("anything", tc.hash)
			assert.Error(t, err)
		})
	}
}
