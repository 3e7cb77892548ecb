package adaptertest

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const hashPrefix = "hashed:"

// PlainPasswords is a PasswordService that prefixes instead of hashing.
type PlainPasswords struct{}

// HashPassword returns the password with a marker prefix.
func (PlainPasswords) HashPassword(password string) (string, error) {
	return hashPrefix + password, nil
}

// VerifyPassword compares the password against a value from HashPassword.
func (PlainPasswords) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != hashPrefix+password {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// ValidatePasswordStrength requires at least eight characters.
func (PlainPasswords) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

// Tokens is a TokenService whose tokens are "token:<user id>".
type Tokens struct {
	Now func() time.Time
}

// GenerateAccessToken returns a readable token for the user.
func (t Tokens) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (*adapter.AccessToken, error) {
	now := time.Now()
	if t.Now != nil {
		now = t.Now()
	}
	return &adapter.AccessToken{
		Token:     "token:" + userID.String(),
		ExpiresAt: now.Add(time.Hour),
	}, nil
}

// ValidateAccessToken parses a token produced by GenerateAccessToken.
func (Tokens) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	raw, ok := strings.CutPrefix(token, "token:")
	if !ok {
		return nil, domainerror.ErrInvalidToken
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Join(domainerror.ErrInvalidToken, err)
	}
	return &adapter.TokenClaims{UserID: userID}, nil
}
