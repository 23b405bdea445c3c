package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-api/internal/apperror"
	"storefront-api/internal/checkout"
	"storefront-api/internal/client"
	"storefront-api/internal/dto"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

// CheckoutService drives a cart through the checkout flow and persists the
// resulting address, payment and order in one transaction.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	VerifyAndPlace(ctx context.Context, userID string, req *dto.VerifyPaymentRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	gateway     client.GatewayClient
	addressRepo repository.AddressRepository
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

func NewCheckoutService(
	db *gorm.DB,
	gateway client.GatewayClient,
	addressRepo repository.AddressRepository,
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		gateway:     gateway,
		addressRepo: addressRepo,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// PlaceOrder runs the locally settled path: the sub-form is validated here
// and the payment is recorded completed without a gateway round trip.
func (s *checkoutServiceImpl) PlaceOrder(ctx context.Context, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	flow := checkout.NewFlow(checkout.CartFromItems(req.Items))
	if err := flow.Proceed(); err != nil {
		return nil, err
	}
	if err := flow.SubmitAddress(req.Address); err != nil {
		return nil, err
	}
	if err := flow.SelectMethod(checkout.Method(req.PaymentMethod), req.Card, req.UpiID); err != nil {
		return nil, err
	}

	txnID := checkout.MintTransactionID(flow.Method(), time.Now())
	return s.persist(ctx, userID, flow, req, txnID, "")
}

// VerifyAndPlace runs the gateway path: the callback signature is checked
// first and a mismatch fails closed, creating nothing.
func (s *checkoutServiceImpl) VerifyAndPlace(ctx context.Context, userID string, req *dto.VerifyPaymentRequest) (*dto.CheckoutResponse, error) {
	if req.GatewayOrderID == "" || req.GatewayPaymentID == "" || req.Signature == "" {
		return nil, apperror.NewValidation("signature", "missing payment verification details")
	}
	if !s.gateway.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature) {
		return nil, apperror.ErrPaymentVerificationFailed
	}

	flow := checkout.NewFlow(checkout.CartFromItems(req.Checkout.Items))
	if err := flow.Proceed(); err != nil {
		return nil, err
	}
	if err := flow.SubmitAddress(req.Checkout.Address); err != nil {
		return nil, err
	}
	if err := flow.SelectVerifiedMethod(checkout.Method(req.Checkout.PaymentMethod)); err != nil {
		return nil, err
	}

	return s.persist(ctx, userID, flow, &req.Checkout, req.GatewayPaymentID, req.GatewayOrderID)
}

func (s *checkoutServiceImpl) persist(ctx context.Context, userID string, flow *checkout.Flow, req *dto.CheckoutRequest, txnID, gatewayOrderID string) (*dto.CheckoutResponse, error) {
	cart := flow.Cart()
	total := cart.Total()
	if req.TotalAmount != 0 && req.TotalAmount != total {
		return nil, apperror.NewValidation("totalAmount", "total does not match line totals")
	}

	form := flow.Address()
	address := &model.Address{
		ID:       "address-" + uuid.NewString(),
		UserID:   userID,
		FullName: form.FullName,
		Phone:    form.Phone,
		Email:    form.Email,
		Address:  form.Address,
		Landmark: form.Landmark,
		City:     form.City,
		State:    form.State,
		Pincode:  form.Pincode,
	}

	payment := &model.Payment{
		ID:             "payment-" + uuid.NewString(),
		TransactionID:  txnID,
		UserID:         userID,
		PaymentMethod:  string(flow.Method()),
		Amount:         total,
		Status:         model.PaymentStatusCompleted,
		UpiID:          req.UpiID,
		GatewayOrderID: gatewayOrderID,
	}
	if req.Card != nil && flow.Method().Card() {
		payment.CardLast4 = req.Card.Last4()
	}

	order := &model.Order{
		ID:          uuid.NewString(),
		OrderID:     "order-" + uuid.NewString(),
		UserID:      userID,
		AddressID:   address.ID,
		PaymentID:   payment.ID,
		TotalAmount: total,
		Status:      model.OrderStatusConfirmed,
	}
	for _, it := range cart.Items() {
		order.Products = append(order.Products, model.OrderProduct{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.addressRepo.Create(ctx, tx, address); err != nil {
			return fmt.Errorf("store address: %w", err)
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("store payment: %w", err)
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := flow.Complete(); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		Success:       true,
		OrderID:       order.OrderID,
		PaymentID:     payment.ID,
		AddressID:     address.ID,
		TransactionID: payment.TransactionID,
		TotalAmount:   total,
		Status:        string(order.Status),
	}, nil
}
