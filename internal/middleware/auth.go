package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront-api/internal/model"
	"storefront-api/internal/service"
)

const (
	// ClaimsKey is where Auth stores the decoded claims on the echo context.
	ClaimsKey = "claims"
	UserIDKey = "user_id"
)

// Auth validates the bearer token and attaches the decoded claims to the
// request context.
func Auth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
			claims, err := authService.VerifyToken(token)
			if err != nil {
				return err
			}

			c.Set(ClaimsKey, claims)
			c.Set(UserIDKey, claims.ID)
			return next(c)
		}
	}
}

// AdminOnly requires an admin role claim; it must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(*service.Claims)
			if !ok || claims.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// ClaimsFrom pulls the decoded claims set by Auth, or nil on open routes.
func ClaimsFrom(c echo.Context) *service.Claims {
	claims, _ := c.Get(ClaimsKey).(*service.Claims)
	return claims
}
