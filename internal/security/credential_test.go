package security

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-vehicle-api/internal/model"
)

func TestSHA256Hasher(t *testing.T) {
	t.Parallel()

	hasher := SHA256Hasher{}

	t.Run("produces the base64 sha256 digest", func(t *testing.T) {
		digest, err := hasher.Hash("123456")
		require.NoError(t, err)
		require.Equal(t, "jZae727K08KaOmKSgOaGzww/XVqGr/PKEgIMkjrcbJI=", digest)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := hasher.Hash("Secret1")
		require.NoError(t, err)
		second, err := hasher.Hash("Secret1")
		require.NoError(t, err)
		require.Equal(t, first, second)
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := hasher.Hash("")
		require.ErrorIs(t, err, ErrInvalidInput)
		require.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("verifies matching secret", func(t *testing.T) {
		digest, err := hasher.Hash("Secret1")
		require.NoError(t, err)
		require.True(t, hasher.Verify("Secret1", digest))
	})

	t.Run("rejects other secrets and empty inputs", func(t *testing.T) {
		digest, err := hasher.Hash("Secret1")
		require.NoError(t, err)

		require.False(t, hasher.Verify("secret1", digest))
		require.False(t, hasher.Verify("", digest))
		require.False(t, hasher.Verify("Secret1", ""))
		require.False(t, hasher.Verify("", ""))
	})
}

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := BcryptHasher{Cost: bcrypt.MinCost}

	t.Run("hashes and verifies", func(t *testing.T) {
		digest, err := hasher.Hash("Secret1")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(digest, "$2"))
		require.True(t, hasher.Verify("Secret1", digest))
		require.False(t, hasher.Verify("Secret2", digest))
	})

	t.Run("accepts legacy sha256 digests", func(t *testing.T) {
		legacy, err := SHA256Hasher{}.Hash("123456")
		require.NoError(t, err)
		require.True(t, hasher.Verify("123456", legacy))
		require.False(t, hasher.Verify("654321", legacy))
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := hasher.Hash("")
		require.ErrorIs(t, err, ErrInvalidInput)
		require.False(t, hasher.Verify("", "$2a$04$abc"))
	})

	t.Run("rejects secrets longer than 72 bytes", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("a", 80))
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestNewHasher(t *testing.T) {
	t.Parallel()

	hasher, err := NewHasher("")
	require.NoError(t, err)
	require.IsType(t, SHA256Hasher{}, hasher)

	hasher, err = NewHasher("BCRYPT")
	require.NoError(t, err)
	require.IsType(t, BcryptHasher{}, hasher)

	_, err = NewHasher("md5")
	require.Error(t, err)
}
