package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/dto"
	"storefront-api/internal/middleware"
	"storefront-api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	token, user, err := h.authService.Register(ctx, req.FullName, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    dto.UserInfoFrom(user),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	token, user, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    dto.UserInfoFrom(user),
	})
}

// Verify confirms the bearer token; the auth middleware has already decoded
// the claims by the time this runs.
func (h *AuthHandler) Verify(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Token is valid",
		"user": map[string]string{
			"id":       claims.ID,
			"email":    claims.Email,
			"fullName": claims.FullName,
			"role":     string(claims.Role),
		},
	})
}
