package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coleLenting/theSpotWeb/internal/core/domain"
)

// messageResponse is the envelope for plain 4xx errors.
type messageResponse struct {
	Message string `json:"message"`
}

// detailedResponse is the envelope for validation and conflict errors.
type detailedResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// serverErrorResponse is the envelope for unhandled 500s. The real cause
// is logged server-side only.
type serverErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that funnels every
// handler failure through one translator:
//   - Known domain errors map to deterministic status codes and bodies.
//   - Echo's own errors (bind failures, router 404s, middleware rejections)
//     keep their status and render as {"message": ...}.
//   - Anything else is logged and rendered as a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, detailedResponse{
				Error:   "Validation Failed",
				Details: ve.Error(),
			})
			return
		}

		if errors.Is(err, domain.ErrEmailTaken) {
			_ = c.JSON(http.StatusConflict, detailedResponse{
				Error:   "Conflict: Duplicate field",
				Details: "email already exists.",
			})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, messageResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		switch {
		case errors.Is(err, domain.ErrInvalidID):
			_ = c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid ID format."})
		case errors.Is(err, domain.ErrInvalidCredentials):
			_ = c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials."})
		case errors.Is(err, domain.ErrForbidden):
			_ = c.JSON(http.StatusForbidden, messageResponse{Message: "Admin access required."})
		case errors.Is(err, domain.ErrUserNotFound):
			_ = c.JSON(http.StatusNotFound, messageResponse{Message: "User not found."})
		case errors.Is(err, domain.ErrItemNotFound):
			_ = c.JSON(http.StatusNotFound, messageResponse{Message: "Movie not found."})
		case errors.Is(err, domain.ErrAlreadyAdmin):
			_ = c.JSON(http.StatusBadRequest, messageResponse{Message: "User is already an admin."})
		default:
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("unhandled error")
			_ = c.JSON(http.StatusInternalServerError, serverErrorResponse{
				Error:   "Something went wrong on the server.",
				Message: "internal server error",
			})
		}
	}
}
