package dto

import (
	"time"

	"storefront-api/internal/checkout"
	"storefront-api/internal/model"
)

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func UserInfoFrom(u *model.User) *UserInfo {
	return &UserInfo{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    *UserInfo `json:"user"`
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type PaymentRequest struct {
	TransactionID string  `json:"transactionId"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	UpiID         string  `json:"upiId,omitempty"`
	CardLast4     string  `json:"cardLast4,omitempty"`
}

type PaymentMethodInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CheckoutRequest struct {
	Items         []checkout.Item      `json:"items"`
	Address       checkout.AddressForm `json:"address"`
	PaymentMethod string               `json:"paymentMethod"`
	Card          *checkout.CardForm   `json:"card,omitempty"`
	UpiID         string               `json:"upiId,omitempty"`
	// Client-computed total, cross-checked against the line totals when set.
	TotalAmount float64 `json:"totalAmount,omitempty"`
}

type CheckoutResponse struct {
	Success       bool    `json:"success"`
	OrderID       string  `json:"orderId"`
	PaymentID     string  `json:"paymentId"`
	AddressID     string  `json:"addressId"`
	TransactionID string  `json:"transactionId"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
}

type CreateGatewayOrderRequest struct {
	Amount  float64 `json:"amount"`
	OrderID string  `json:"orderId"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string          `json:"razorpayOrderId"`
	GatewayPaymentID string          `json:"razorpayPaymentId"`
	Signature        string          `json:"razorpaySignature"`
	Checkout         CheckoutRequest `json:"checkout"`
}

type RefundRequest struct {
	Amount float64 `json:"amount,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type UserDetail struct {
	User      *UserInfo        `json:"user"`
	Addresses []*model.Address `json:"addresses"`
	Orders    []*model.Order   `json:"orders"`
	Payments  []*model.Payment `json:"payments"`
}
