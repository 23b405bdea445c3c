package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront-api/internal/model"
)

type AddressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, address *model.Address) error
	ListByUser(ctx context.Context, userID string) ([]*model.Address, error)
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{db: db}
}

// Create takes the surrounding transaction so the checkout write stays
// atomic with the payment and order rows.
func (r *addressRepoImpl) Create(ctx context.Context, tx *gorm.DB, address *model.Address) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(address).Error
}

func (r *addressRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Address, error) {
	var addresses []*model.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}

	return addresses, nil
}
