// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints. Every failure returns the same envelope: a stable machine
// code, a human-readable message under "error", and the request correlation
// ID. Success payloads are endpoint-specific JSON objects.
//
// Example error response:
//
//	HTTP/1.1 400 Bad Request
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "validation_failed",
//	  "error": "not all fields filled"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkozyrev/barber-booking-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// RequestID correlates server logs and client errors.
	RequestID string `json:"request_id,omitempty"`
	// Code is a stable, machine-readable string (see errors.go constants).
	Code string `json:"code"`
	// Error is the human-readable message, safe to show to users.
	Error string `json:"error"`
}

// fail aborts the request with a structured error. Server errors (>=500)
// are logged with the request-scoped logger; their message is replaced with
// a generic one so store internals never leak to clients.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
		msg = "internal server error"
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Error:     msg,
	})
}

// Fail is the exported variant of fail(), for router-level fallbacks
// (NoRoute, NoMethod) that live outside this package.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
