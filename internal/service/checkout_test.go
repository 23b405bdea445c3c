package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront-api/internal/apperror"
	"storefront-api/internal/checkout"
	"storefront-api/internal/client"
	"storefront-api/internal/config"
	"storefront-api/internal/dto"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

const gatewaySecret = "test-secret"

type checkoutFixture struct {
	db          *gorm.DB
	svc         CheckoutService
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	db := newTestDB(t)
	gateway := client.NewRazorpayClient(&config.Razorpay{KeySecret: gatewaySecret})
	addressRepo := repository.NewAddressRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	return &checkoutFixture{
		db:          db,
		svc:         NewCheckoutService(db, gateway, addressRepo, paymentRepo, orderRepo),
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

func testItems() []checkout.Item {
	return []checkout.Item{
		{ProductID: "product-1", Name: "Bandhani Dupatta", Price: 500, Quantity: 2},
		{ProductID: "product-2", Name: "Jaipur Vase", Price: 300, Quantity: 1},
	}
}

func testAddress() checkout.AddressForm {
	return checkout.AddressForm{
		FullName: "Asha Sharma",
		Phone:    "9876543210",
		Email:    "asha@example.com",
		Address:  "12 MI Road",
		City:     "Jaipur",
		State:    "Rajasthan",
		Pincode:  "302001",
	}
}

func signCallback(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(gatewaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPlaceOrderCOD(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	resp, err := fx.svc.PlaceOrder(ctx, "user-1", &dto.CheckoutRequest{
		Items:         testItems(),
		Address:       testAddress(),
		PaymentMethod: "cod",
		TotalAmount:   1300,
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.OrderID, "order-"))
	assert.True(t, strings.HasPrefix(resp.TransactionID, "COD-"))
	assert.Equal(t, 1300.0, resp.TotalAmount)
	assert.Equal(t, string(model.OrderStatusConfirmed), resp.Status)

	order, err := fx.orderRepo.FindByOrderID(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, model.OrderStatusConfirmed, order.Status)
	require.Len(t, order.Products, 2)
	assert.Equal(t, "Bandhani Dupatta", order.Products[0].Name)
	assert.Equal(t, 2, order.Products[0].Quantity)

	payments, err := fx.paymentRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "cod", payments[0].PaymentMethod)
	assert.Equal(t, model.PaymentStatusCompleted, payments[0].Status)
	assert.Equal(t, 1300.0, payments[0].Amount)
}

func TestPlaceOrderCardStoresLast4(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	card := checkout.CardForm{
		Number:      "4111 1111 1111 1111",
		HolderName:  "Asha Sharma",
		ExpiryMonth: "12",
		ExpiryYear:  "39",
		CVV:         "123",
	}
	resp, err := fx.svc.PlaceOrder(ctx, "user-1", &dto.CheckoutRequest{
		Items:         testItems(),
		Address:       testAddress(),
		PaymentMethod: "credit-card",
		Card:          &card,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.TransactionID, "TXN-"))

	payments, err := fx.paymentRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "1111", payments[0].CardLast4)
}

func TestPlaceOrderUPI(t *testing.T) {
	fx := newCheckoutFixture(t)

	resp, err := fx.svc.PlaceOrder(context.Background(), "user-1", &dto.CheckoutRequest{
		Items:         testItems(),
		Address:       testAddress(),
		PaymentMethod: "upi",
		UpiID:         "asha@okicici",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.TransactionID, "UPI-"))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	fx := newCheckoutFixture(t)

	_, err := fx.svc.PlaceOrder(context.Background(), "user-1", &dto.CheckoutRequest{
		Address:       testAddress(),
		PaymentMethod: "cod",
	})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "cart")
}

func TestPlaceOrderTotalMismatch(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := fx.svc.PlaceOrder(ctx, "user-1", &dto.CheckoutRequest{
		Items:         testItems(),
		Address:       testAddress(),
		PaymentMethod: "cod",
		TotalAmount:   999,
	})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "totalAmount")

	orders, err := fx.orderRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, orders, "a rejected checkout must not create an order")
}

func TestVerifyAndPlace(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	resp, err := fx.svc.VerifyAndPlace(ctx, "user-1", &dto.VerifyPaymentRequest{
		GatewayOrderID:   "order_razor123",
		GatewayPaymentID: "pay_razor456",
		Signature:        signCallback("order_razor123", "pay_razor456"),
		Checkout: dto.CheckoutRequest{
			Items:         testItems(),
			Address:       testAddress(),
			PaymentMethod: "upi",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "pay_razor456", resp.TransactionID,
		"gateway payments keep the gateway payment ID as transaction ID")

	payments, err := fx.paymentRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "order_razor123", payments[0].GatewayOrderID)
	assert.Equal(t, model.PaymentStatusCompleted, payments[0].Status)
}

func TestVerifyAndPlaceTamperedSignature(t *testing.T) {
	fx := newCheckoutFixture(t)
	ctx := context.Background()

	_, err := fx.svc.VerifyAndPlace(ctx, "user-1", &dto.VerifyPaymentRequest{
		GatewayOrderID:   "order_razor123",
		GatewayPaymentID: "pay_razor456",
		Signature:        signCallback("order_razor123", "pay_other"),
		Checkout: dto.CheckoutRequest{
			Items:         testItems(),
			Address:       testAddress(),
			PaymentMethod: "upi",
		},
	})
	require.ErrorIs(t, err, apperror.ErrPaymentVerificationFailed)

	orders, err := fx.orderRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, orders)
	payments, err := fx.paymentRepo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, payments, "a failed verification must persist nothing")
}

func TestVerifyAndPlaceMissingDetails(t *testing.T) {
	fx := newCheckoutFixture(t)

	_, err := fx.svc.VerifyAndPlace(context.Background(), "user-1", &dto.VerifyPaymentRequest{
		GatewayOrderID: "order_razor123",
		Checkout: dto.CheckoutRequest{
			Items:         testItems(),
			Address:       testAddress(),
			PaymentMethod: "upi",
		},
	})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "signature")
}

func TestVerifyAndPlaceRejectsCOD(t *testing.T) {
	fx := newCheckoutFixture(t)

	_, err := fx.svc.VerifyAndPlace(context.Background(), "user-1", &dto.VerifyPaymentRequest{
		GatewayOrderID:   "order_razor123",
		GatewayPaymentID: "pay_razor456",
		Signature:        signCallback("order_razor123", "pay_razor456"),
		Checkout: dto.CheckoutRequest{
			Items:         testItems(),
			Address:       testAddress(),
			PaymentMethod: "cod",
		},
	})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "paymentMethod")
}
