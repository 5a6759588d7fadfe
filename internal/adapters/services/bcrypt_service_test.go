package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobcrypt "golang.org/x/crypto/bcrypt"

	"notekeeper/internal/adapters/services"
	domainservices "notekeeper/internal/domain/services"
)

func TestBcryptHash(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(cryptobcrypt.MinCost)

	t.Run("valid password produces verifiable hash", func(t *testing.T) {
		hash, err := service.Hash(ctx, "validPassword123")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)

		err = cryptobcrypt.CompareHashAndPassword([]byte(hash), []byte("validPassword123"))
		assert.NoError(t, err, "created hash should be verifiable")
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		hash, err := service.Hash(ctx, "")

		require.Error(t, err)
		assert.Empty(t, hash)
		assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
	})

	t.Run("same password hashes differently due to salt", func(t *testing.T) {
		hash1, err1 := service.Hash(ctx, "samePassword123")
		hash2, err2 := service.Hash(ctx, "samePassword123")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, hash1, hash2, "hashes of same password should differ due to salt")
	})

	t.Run("short password is allowed", func(t *testing.T) {
		hash, err := service.Hash(ctx, "x")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
	})
}

func TestBcryptVerify(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(cryptobcrypt.MinCost)

	hash, err := service.Hash(ctx, "correctPassword")
	require.NoError(t, err)

	t.Run("correct password verifies", func(t *testing.T) {
		valid, err := service.Verify(ctx, "correctPassword", hash)

		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		valid, err := service.Verify(ctx, "wrongPassword", hash)

		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("malformed hash verifies false without error", func(t *testing.T) {
		valid, err := service.Verify(ctx, "correctPassword", "not-a-bcrypt-hash")

		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("empty hash verifies false without error", func(t *testing.T) {
		valid, err := service.Verify(ctx, "correctPassword", "")

		require.NoError(t, err)
		assert.False(t, valid)
	})
}

func TestBcryptCostFallback(t *testing.T) {
	ctx := context.Background()

	// Cost below bcrypt.MinCost falls back to the default cost.
	service := services.NewBcrypt(0)

	hash, err := service.Hash(ctx, "somePassword123")
	require.NoError(t, err)

	cost, err := cryptobcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, cryptobcrypt.DefaultCost, cost)
}
