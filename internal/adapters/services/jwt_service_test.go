package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/adapters/services"
	domainservices "notekeeper/internal/domain/services"
)

const testSecretKey = "test-secret-key-12345"

func TestGenerateAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("token is generated with expiry", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, 15*time.Minute)

		token, expiresAt, err := service.GenerateAccessToken(ctx, "user-id-123", "testuser")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)
	})

	t.Run("empty secret key fails", func(t *testing.T) {
		service := services.NewJWT("", 15*time.Minute)

		_, _, err := service.GenerateAccessToken(ctx, "user-id-123", "testuser")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrGeneratingJWTToken)
	})
}

func TestValidateAccessToken(t *testing.T) {
	ctx := context.Background()

	t.Run("successful validation of a valid token", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, 15*time.Minute)

		token, _, err := service.GenerateAccessToken(ctx, "user-id-123", "testuser")
		require.NoError(t, err)

		userID, err := service.ValidateAccessToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user-id-123", userID)
	})

	t.Run("error on expired token", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, -15*time.Minute)

		token, _, err := service.GenerateAccessToken(ctx, "user-id-123", "testuser")
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(ctx, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrExpiredJWTToken)
	})

	t.Run("error on invalid token format", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, 15*time.Minute)

		_, err := service.ValidateAccessToken(ctx, "invalid.token.format")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("error on token with wrong signature", func(t *testing.T) {
		service1 := services.NewJWT(testSecretKey, 15*time.Minute)
		service2 := services.NewJWT("different-secret-key-67890", 15*time.Minute)

		token, _, err := service1.GenerateAccessToken(ctx, "user-id-123", "testuser")
		require.NoError(t, err)

		_, err = service2.ValidateAccessToken(ctx, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("error on token with none signing method", func(t *testing.T) {
		claims := &services.Claims{
			UserID:   "user-id-123",
			Username: "testuser",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Subject:   "user-id-123",
			},
		}

		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		service := services.NewJWT(testSecretKey, 15*time.Minute)
		_, err = service.ValidateAccessToken(ctx, tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("error on empty token", func(t *testing.T) {
		service := services.NewJWT(testSecretKey, 15*time.Minute)

		_, err := service.ValidateAccessToken(ctx, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})

	t.Run("error on token without user_id claim", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"some_random_field": "not_user_id",
			"exp":               time.Now().Add(15 * time.Minute).Unix(),
		})

		tokenString, err := token.SignedString([]byte(testSecretKey))
		require.NoError(t, err)

		service := services.NewJWT(testSecretKey, 15*time.Minute)
		_, err = service.ValidateAccessToken(ctx, tokenString)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
	})
}
