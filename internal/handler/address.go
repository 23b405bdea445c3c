package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/checkout"
	"storefront-api/internal/middleware"
	"storefront-api/internal/service"
)

type AddressHandler struct {
	addressService service.AddressService
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

type addressRequest struct {
	checkout.AddressForm
	IsDefault bool `json:"isDefault"`
}

func (h *AddressHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	claims := middleware.ClaimsFrom(c)

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	address, err := h.addressService.Create(ctx, claims.ID, req.AddressForm, req.IsDefault)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"address": address,
	})
}

func (h *AddressHandler) ListByUser(c echo.Context) error {
	ctx := c.Request().Context()

	addresses, err := h.addressService.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":   true,
		"addresses": addresses,
	})
}
