package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository creates the gorm-backed owner store.
func NewOwnerRepository(db *gorm.DB) adapter.OwnerRepository {
	return &ownerRepository{db: db}
}

// Register relies on the unique email index: a conflicting insert is skipped
// and reported as ErrEmailAlreadyExists, so two concurrent sign-ups with the
// same email cannot both succeed.
func (r *ownerRepository) Register(ctx context.Context, owner *entity.User) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model.FromEntity(owner))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEmailAlreadyExists
	}
	return nil
}

func (r *ownerRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row model.UserModel
	err := r.db.WithContext(ctx).Where(&model.UserModel{Email: email}).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}
