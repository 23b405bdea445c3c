package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-api/internal/apperror"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type OrderService interface {
	List(ctx context.Context) ([]*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{orderRepo: orderRepo}
}

func (s *orderServiceImpl) List(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *orderServiceImpl) ListByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// UpdateStatus advances an order along the allowed transitions:
// confirmed -> shipped|cancelled, shipped -> delivered|cancelled.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, apperror.NewValidation("status", "unknown order status")
	}

	order, err := s.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("order")
		}
		return nil, err
	}

	if !model.CanTransition(order.Status, status) {
		return nil, apperror.NewValidation("status",
			fmt.Sprintf("cannot move a %s order to %s", order.Status, status))
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = status

	return order, nil
}
