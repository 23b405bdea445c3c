package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-api/internal/apperror"
	"storefront-api/internal/checkout"
	"storefront-api/internal/client"
	"storefront-api/internal/dto"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

type PaymentService interface {
	Record(ctx context.Context, userID string, req *dto.PaymentRequest) (*model.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Payment, error)
	Methods() []dto.PaymentMethodInfo
	CreateGatewayOrder(ctx context.Context, req *dto.CreateGatewayOrderRequest) (*client.GatewayOrder, error)
	Refund(ctx context.Context, paymentID string, amount float64) (*model.Payment, error)
}

type paymentServiceImpl struct {
	gateway     client.GatewayClient
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(gateway client.GatewayClient, paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentServiceImpl{
		gateway:     gateway,
		paymentRepo: paymentRepo,
	}
}

// Record stores a payment settled outside the gateway (cod, direct
// transfer, locally confirmed card/upi).
func (s *paymentServiceImpl) Record(ctx context.Context, userID string, req *dto.PaymentRequest) (*model.Payment, error) {
	errs := map[string]string{}
	if req.TransactionID == "" {
		errs["transactionId"] = "transaction ID is required"
	}
	if !checkout.Method(req.PaymentMethod).Known() {
		errs["paymentMethod"] = "unknown payment method"
	}
	if req.Amount <= 0 {
		errs["amount"] = "amount must be a positive number"
	}
	if err := apperror.FieldErrors(errs); err != nil {
		return nil, err
	}

	payment := &model.Payment{
		ID:            "payment-" + uuid.NewString(),
		TransactionID: req.TransactionID,
		UserID:        userID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		Status:        model.PaymentStatusCompleted,
		UpiID:         req.UpiID,
		CardLast4:     req.CardLast4,
	}
	if err := s.paymentRepo.Create(ctx, nil, payment); err != nil {
		return nil, fmt.Errorf("store payment: %w", err)
	}

	return payment, nil
}

func (s *paymentServiceImpl) ListByUser(ctx context.Context, userID string) ([]*model.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}

func (s *paymentServiceImpl) Methods() []dto.PaymentMethodInfo {
	return []dto.PaymentMethodInfo{
		{ID: string(checkout.MethodCreditCard), Name: "Credit Card", Description: "Visa, Mastercard, American Express"},
		{ID: string(checkout.MethodDebitCard), Name: "Debit Card", Description: "All major banks"},
		{ID: string(checkout.MethodUPI), Name: "UPI", Description: "Google Pay, PhonePe, Paytm"},
		{ID: string(checkout.MethodNetBanking), Name: "Net Banking", Description: "All major Indian banks"},
		{ID: string(checkout.MethodWallet), Name: "Digital Wallet", Description: "Paytm, Amazon Pay, Mobikwik"},
		{ID: string(checkout.MethodDirectTransfer), Name: "Direct Transfer", Description: "Direct bank/UPI transfer"},
		{ID: string(checkout.MethodCOD), Name: "Cash on Delivery", Description: "Pay when your order arrives"},
	}
}

func (s *paymentServiceImpl) CreateGatewayOrder(ctx context.Context, req *dto.CreateGatewayOrderRequest) (*client.GatewayOrder, error) {
	errs := map[string]string{}
	if req.Amount <= 0 {
		errs["amount"] = "amount must be a positive number"
	}
	if req.OrderID == "" {
		errs["orderId"] = "order ID is required"
	}
	if req.Email == "" {
		errs["email"] = "email is required"
	}
	if req.Phone == "" {
		errs["phone"] = "phone is required"
	}
	if err := apperror.FieldErrors(errs); err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, req.Amount, req.OrderID, req.Email, req.Phone)
	if err != nil {
		return nil, &apperror.GatewayError{Err: err}
	}

	return order, nil
}

// Refund issues a gateway refund and flips the payment record. amount <= 0
// refunds in full.
func (s *paymentServiceImpl) Refund(ctx context.Context, paymentID string, amount float64) (*model.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("payment")
		}
		return nil, err
	}

	if payment.Status == model.PaymentStatusRefunded {
		return nil, apperror.NewValidation("status", "payment already refunded")
	}

	if _, err := s.gateway.Refund(ctx, payment.TransactionID, amount); err != nil {
		return nil, &apperror.GatewayError{Err: err}
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment.ID, model.PaymentStatusRefunded); err != nil {
		return nil, fmt.Errorf("mark payment refunded: %w", err)
	}
	payment.Status = model.PaymentStatusRefunded

	return payment, nil
}
