package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/dto"
	"storefront-api/internal/middleware"
	"storefront-api/internal/service"
)

type PaymentHandler struct {
	paymentService  service.PaymentService
	checkoutService service.CheckoutService
}

func NewPaymentHandler(paymentService service.PaymentService, checkoutService service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{
		paymentService:  paymentService,
		checkoutService: checkoutService,
	}
}

func (h *PaymentHandler) Methods(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"methods": h.paymentService.Methods(),
	})
}

func (h *PaymentHandler) Record(c echo.Context) error {
	ctx := c.Request().Context()
	claims := middleware.ClaimsFrom(c)

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	payment, err := h.paymentService.Record(ctx, claims.ID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Payment recorded",
		"payment": payment,
	})
}

func (h *PaymentHandler) ListByUser(c echo.Context) error {
	ctx := c.Request().Context()

	payments, err := h.paymentService.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"payments": payments,
	})
}

// CreateGatewayOrder opens an order handle with the external gateway; the
// client completes the payment in the gateway's own UI.
func (h *PaymentHandler) CreateGatewayOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateGatewayOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	order, err := h.paymentService.CreateGatewayOrder(ctx, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"order":   order,
	})
}

// Verify checks the gateway callback signature and, only on success,
// persists the checkout. A tampered signature creates nothing.
func (h *PaymentHandler) Verify(c echo.Context) error {
	ctx := c.Request().Context()
	claims := middleware.ClaimsFrom(c)

	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.checkoutService.VerifyAndPlace(ctx, claims.ID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) Refund(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	payment, err := h.paymentService.Refund(ctx, c.Param("id"), req.Amount)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"payment": payment,
	})
}
