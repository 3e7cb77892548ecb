package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// OwnerRepository stores the accounts that own ledger records. Email is the
// login key and is unique; every transaction, debt and limit is scoped by the
// owner's id.
type OwnerRepository interface {
	// Register inserts a new owner. A taken email yields ErrEmailAlreadyExists
	// and leaves the existing owner untouched.
	Register(ctx context.Context, owner *entity.User) error

	// FindByEmail returns the owner logging in with email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
