// Package services defines the business logic for slot availability,
// booking, and the admin credential gate. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed
// at the handler layer.
package services

import "errors"

var (
	// ErrDateRequired is returned when an availability query is missing
	// the date parameter.
	ErrDateRequired = errors.New("date not provided")

	// ErrMissingFields is returned when a booking request lacks one or
	// more required fields (date, time, specialist, service, name, phone).
	ErrMissingFields = errors.New("not all fields filled")

	// ErrSlotTaken is returned when the requested (date, time) slot is
	// already occupied by another appointment. A conflict is permanent
	// information about the slot, not a transient fault, so callers
	// should not retry.
	ErrSlotTaken = errors.New("slot already taken")

	// ErrBadCredentials is returned when the supplied username/password
	// pair does not match the seeded admin credential.
	ErrBadCredentials = errors.New("invalid credentials")
)
