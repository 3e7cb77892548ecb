package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/ledger/internal/application/adapter/adaptertest"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	clock := &adaptertest.FixedClock{Time: now}
	service := NewTokenService("test-secret", time.Hour, clock)
	userID := uuid.New()

	token, err := service.GenerateAccessToken(ctx, userID, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), token.ExpiresAt)

	t.Run("round trip", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, token.Token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "ana@example.com", claims.Email)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewTokenService("test-secret", time.Hour, adaptertest.FixedClock{Time: now.Add(2 * time.Hour)})
		_, err := later.ValidateAccessToken(ctx, token.Token)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour, clock)
		_, err := other.ValidateAccessToken(ctx, token.Token)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("wrong token type", func(t *testing.T) {
		claims := CustomClaims{
			UserID:    userID.String(),
			TokenType: "refresh",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(ctx, signed)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateAccessToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, domainerror.ErrUnauthenticated)
	})
}

func TestPasswordService(t *testing.T) {
	service := NewPasswordService(bcrypt.MinCost)

	hash, err := service.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, service.VerifyPassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, service.VerifyPassword(hash, "wrong-pass"), domainerror.ErrInvalidCredentials)

	assert.ErrorIs(t, service.ValidatePasswordStrength("short"), domainerror.ErrWeakPassword)
	assert.NoError(t, service.ValidatePasswordStrength("long-enough"))
}

func TestSystemClock(t *testing.T) {
	clock, err := NewSystemClock("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", clock.Now().Location().String())

	utc, err := NewSystemClock("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, utc.Now().Location())

	_, err = NewSystemClock("Mars/Olympus")
	assert.Error(t, err)
}
