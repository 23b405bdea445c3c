package client

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) GatewayClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRazorpayClient(&config.Razorpay{
		BaseApiURL: srv.URL,
		KeyID:      "key-id",
		KeySecret:  "key-secret",
	})
}

func TestToPaise(t *testing.T) {
	assert.Equal(t, int64(49999), toPaise(499.99))
	assert.Equal(t, int64(1000), toPaise(10))
	assert.Equal(t, int64(130000), toPaise(1300.00))
}

func TestCreateOrder(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key-id", user)
		assert.Equal(t, "key-secret", pass)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_razor123",
			Amount:   49999,
			Currency: "INR",
			Receipt:  "order-abc",
			Status:   "created",
		})
	})

	order, err := c.CreateOrder(context.Background(), 499.99, "order-abc", "asha@example.com", "9876543210")
	require.NoError(t, err)

	assert.Equal(t, "/v1/orders", gotPath)
	assert.Equal(t, float64(49999), gotPayload["amount"])
	assert.Equal(t, "INR", gotPayload["currency"])
	assert.Equal(t, "order-abc", gotPayload["receipt"])
	notes := gotPayload["notes"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", notes["email"])
	assert.Equal(t, "9876543210", notes["contact"])

	assert.Equal(t, "order_razor123", order.ID)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderGatewayError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"description":"bad key"}}`))
	})

	_, err := c.CreateOrder(context.Background(), 100, "order-abc", "asha@example.com", "9876543210")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestRefundFull(t *testing.T) {
	var gotPath string
	var gotPayload map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(GatewayRefund{
			ID:        "rfnd_123",
			PaymentID: "pay_razor456",
			Status:    "processed",
		})
	})

	refund, err := c.Refund(context.Background(), "pay_razor456", 0)
	require.NoError(t, err)

	assert.Equal(t, "/v1/payments/pay_razor456/refund", gotPath)
	assert.NotContains(t, gotPayload, "amount", "a full refund sends no amount")
	assert.Equal(t, "processed", refund.Status)
}

func TestRefundPartial(t *testing.T) {
	var gotPayload map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		json.NewEncoder(w).Encode(GatewayRefund{ID: "rfnd_123", Status: "processed"})
	})

	_, err := c.Refund(context.Background(), "pay_razor456", 250.50)
	require.NoError(t, err)
	assert.Equal(t, float64(25050), gotPayload["amount"])
}

func TestVerifySignature(t *testing.T) {
	c := NewRazorpayClient(&config.Razorpay{KeySecret: "key-secret"})

	mac := hmac.New(sha256.New, []byte("key-secret"))
	mac.Write([]byte("order_razor123|pay_razor456"))
	good := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, c.VerifySignature("order_razor123", "pay_razor456", good))
	assert.False(t, c.VerifySignature("order_razor123", "pay_other", good))
	assert.False(t, c.VerifySignature("order_razor123", "pay_razor456", "deadbeef"))
	assert.False(t, c.VerifySignature("order_razor123", "pay_razor456", ""))
}
