package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"storefront-api/internal/apperror"
	"storefront-api/internal/checkout"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type AddressService interface {
	Create(ctx context.Context, userID string, form checkout.AddressForm, isDefault bool) (*model.Address, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Address, error)
}

type addressServiceImpl struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressServiceImpl{addressRepo: addressRepo}
}

func (s *addressServiceImpl) Create(ctx context.Context, userID string, form checkout.AddressForm, isDefault bool) (*model.Address, error) {
	if errs := form.Validate(); errs != nil {
		return nil, apperror.FieldErrors(errs)
	}

	address := &model.Address{
		ID:        "address-" + uuid.NewString(),
		UserID:    userID,
		FullName:  form.FullName,
		Phone:     form.Phone,
		Email:     form.Email,
		Address:   form.Address,
		Landmark:  form.Landmark,
		City:      form.City,
		State:     form.State,
		Pincode:   form.Pincode,
		IsDefault: isDefault,
	}
	if err := s.addressRepo.Create(ctx, nil, address); err != nil {
		return nil, fmt.Errorf("store address: %w", err)
	}

	return address, nil
}

func (s *addressServiceImpl) ListByUser(ctx context.Context, userID string) ([]*model.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}
