package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dadscape/diary-api/internal/domain"
)

// Envelope is the uniform response wrapper used by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps a successful response.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage wraps a successful response with a human-readable note.
func OKMessage(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Created wraps a 201 response for freshly created resources.
func Created(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// Message wraps a successful response that carries no data payload.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: msg})
}

func Unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: msg})
}

func Forbidden(c echo.Context, msg string) error {
	return c.JSON(http.StatusForbidden, Envelope{Success: false, Error: msg})
}

func NotFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, Envelope{Success: false, Error: msg})
}

func InternalError(c echo.Context, msg string) error {
	return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: msg})
}

// Error maps the error taxonomy onto status codes. Typed domain errors
// carry caller-safe messages; anything else is logged in full and
// reported only as the fallback message.
func Error(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return BadRequest(c, err.Error())
	case errors.Is(err, domain.ErrAuthentication):
		return Unauthorized(c, err.Error())
	case errors.Is(err, domain.ErrAuthorization):
		return Forbidden(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return NotFound(c, err.Error())
	default:
		slog.ErrorContext(c.Request().Context(), fallback,
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()),
		)
		return InternalError(c, fallback)
	}
}
