package client

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/config"
)

// GatewayClient talks to the Razorpay-style payment gateway that settles
// card, upi, netbanking and wallet payments.
type GatewayClient interface {
	CreateOrder(ctx context.Context, amount float64, receipt, email, phone string) (*GatewayOrder, error)
	Refund(ctx context.Context, gatewayPaymentID string, amount float64) (*GatewayRefund, error)
	VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type GatewayRefund struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	keyID      string
	keySecret  string
}

func NewRazorpayClient(cfg *config.Razorpay) GatewayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
	}
}

// toPaise converts a rupee amount to the integer paise the gateway expects.
func toPaise(amount float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, amount float64, receipt, email, phone string) (*GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":   toPaise(amount),
		"currency": "INR",
		"receipt":  receipt,
		"notes": map[string]string{
			"email":   email,
			"contact": phone,
		},
	}

	var order GatewayOrder
	if err := c.post(ctx, "/v1/orders", payload, &order); err != nil {
		return nil, fmt.Errorf("gateway create order: %w", err)
	}

	return &order, nil
}

// Refund refunds the given gateway payment; amount <= 0 means a full refund.
func (c *razorpayClientImpl) Refund(ctx context.Context, gatewayPaymentID string, amount float64) (*GatewayRefund, error) {
	payload := map[string]interface{}{}
	if amount > 0 {
		payload["amount"] = toPaise(amount)
	}

	var refund GatewayRefund
	path := fmt.Sprintf("/v1/payments/%s/refund", gatewayPaymentID)
	if err := c.post(ctx, path, payload, &refund); err != nil {
		return nil, fmt.Errorf("gateway refund: %w", err)
	}

	return &refund, nil
}

// VerifySignature checks the callback signature: HMAC-SHA256 over
// "orderID|paymentID" keyed with the shared secret, hex-encoded.
func (c *razorpayClientImpl) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *razorpayClientImpl) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gateway error %d: %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gateway response: %w", err)
	}

	return nil
}
