package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-api/internal/apperror"
	"storefront-api/internal/dto"
	"storefront-api/internal/repository"
)

// AdminService covers the privileged read paths of the admin console.
// Catalog mutation lives on CatalogService behind the same role gate.
type AdminService interface {
	ListUsers(ctx context.Context) ([]*dto.UserInfo, error)
	UserDetail(ctx context.Context, userID string) (*dto.UserDetail, error)
	DeleteUser(ctx context.Context, userID string) error
}

type adminServiceImpl struct {
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	addressRepo repository.AddressRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
) AdminService {
	return &adminServiceImpl{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *adminServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserInfo, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]*dto.UserInfo, len(users))
	for i, u := range users {
		infos[i] = dto.UserInfoFrom(u)
	}

	return infos, nil
}

// UserDetail joins the user's addresses, orders and payments by foreign key.
func (s *adminServiceImpl) UserDetail(ctx context.Context, userID string) (*dto.UserDetail, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user")
		}
		return nil, err
	}

	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	payments, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return &dto.UserDetail{
		User:      dto.UserInfoFrom(user),
		Addresses: addresses,
		Orders:    orders,
		Payments:  payments,
	}, nil
}

// DeleteUser removes the user row only; dependent rows stay behind with a
// dangling userId.
func (s *adminServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("user")
		}
		return err
	}

	return nil
}
