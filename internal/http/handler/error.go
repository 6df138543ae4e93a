package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cmsapi/internal/http/middleware"
	"cmsapi/internal/service"
)

// errorPayload is the standardized error response body.
type errorPayload struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Details   string `json:"details,omitempty"`
}

// requestIDFromCtx extracts the request_id stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal details.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     message,
		RequestID: requestIDFromCtx(c),
	})
}

// serviceError translates known service sentinels to 400/404 responses.
// Anything else is returned as-is, so the global error handler maps it to a
// generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrMediaNotFound):
		return writeError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrQueryRequired),
		errors.Is(err, service.ErrPromptRequired),
		errors.Is(err, service.ErrContentRequired):
		return writeError(c, fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// ErrorHandler returns the Fiber global error handler. Unexpected errors map
// to 500 with a generic message; the underlying detail is only exposed
// outside production mode.
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			message = fe.Message
		}

		payload := errorPayload{
			Error:     message,
			RequestID: requestIDFromCtx(c),
		}
		if status == fiber.StatusInternalServerError && !production {
			payload.Details = err.Error()
		}
		return c.Status(status).JSON(payload)
	}
}
