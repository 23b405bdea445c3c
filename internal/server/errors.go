package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront-api/internal/apperror"
)

// httpErrorHandler maps the apperror taxonomy onto statuses and the
// {"success":false,"error":...} envelope. Unclassified errors become 500s
// and are logged rather than leaked.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"
	var fields map[string]string

	var (
		validationErr *apperror.ValidationError
		notFoundErr   *apperror.NotFoundError
		gatewayErr    *apperror.GatewayError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		message = "validation failed"
		fields = validationErr.Fields
	case errors.Is(err, apperror.ErrDuplicateEmail):
		status = http.StatusConflict
		message = apperror.ErrDuplicateEmail.Error()
	case errors.Is(err, apperror.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = apperror.ErrInvalidCredentials.Error()
	case errors.Is(err, apperror.ErrTokenExpired):
		status = http.StatusUnauthorized
		message = apperror.ErrTokenExpired.Error()
	case errors.Is(err, apperror.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = apperror.ErrInvalidToken.Error()
	case errors.Is(err, apperror.ErrPaymentVerificationFailed):
		status = http.StatusBadRequest
		message = apperror.ErrPaymentVerificationFailed.Error()
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		message = notFoundErr.Error()
	case errors.As(err, &gatewayErr):
		status = http.StatusBadGateway
		message = "payment gateway unavailable"
	case errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		c.Logger().Error(err)
	}

	resp := map[string]interface{}{
		"success": false,
		"error":   message,
	}
	if fields != nil {
		resp["fields"] = fields
	}

	if jsonErr := c.JSON(status, resp); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
