// Package handlers defines the HTTP-layer error codes used across all API
// endpoints. The codes give clients a stable, machine-readable taxonomy on
// top of the human-readable messages; handlers pick the most specific match
// and pass it to fail() together with the status.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidation       = "validation_failed"
	ErrCodeSlotTaken        = "slot_taken"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeInternal         = "internal_error"
)
