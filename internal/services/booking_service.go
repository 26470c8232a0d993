// Package services – BookingService
//
// This file implements the BookingService, which owns appointment creation
// and listing. Creation validates required fields, parses the wall-clock
// strings for well-formedness, and persists the appointment inside a
// transaction so the availability check and the insert form a single unit.
//
// The pre-insert read only exists for a friendly error message; the
// authoritative single-occupancy guard is the unique index on (date, time).
// A constraint violation on insert is mapped to ErrSlotTaken, so two
// concurrent bookings for the same slot can never both succeed.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dkozyrev/barber-booking-backend/internal/domain"
	"github.com/dkozyrev/barber-booking-backend/internal/repo"
	"github.com/dkozyrev/barber-booking-backend/internal/schedule"
)

// CreateAppointmentInput carries the booking request fields. All fields
// except StrizhkaType are required and must be non-empty after trimming.
type CreateAppointmentInput struct {
	Date         string
	Time         string
	Specialist   string
	Service      string
	StrizhkaType string
	Name         string
	Phone        string
}

// BookingService implements the use-cases around appointments. It is
// context-aware and opens its own transaction per booking.
type BookingService struct {
	// DB is the database handle used for all booking operations.
	DB *gorm.DB
}

// Create validates input and persists a new appointment.
//
// Semantics and validation:
//   - date, time, specialist, service, name, phone must be non-empty;
//     otherwise ErrMissingFields, and nothing is written.
//   - date must parse as "YYYY-MM-DD" and time as "HH:MM"; otherwise
//     schedule.ErrBadDate / schedule.ErrBadTime.
//   - strizhkaType is optional and defaults to "".
//   - The (date, time) slot must be free; otherwise ErrSlotTaken.
//
// Concurrency & atomicity:
//   - The availability check and insert run inside one transaction, and a
//     unique-constraint violation on the insert is also reported as
//     ErrSlotTaken. Under two simultaneous bookings for the same slot,
//     exactly one commits.
//
// On success the returned appointment carries its store-assigned ID.
func (s *BookingService) Create(ctx context.Context, in CreateAppointmentInput) (*domain.Appointment, error) {
	tr := otel.Tracer("services/BookingService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("booking.date", in.Date),
			attribute.String("booking.time", in.Time),
		),
	)
	defer span.End()

	a := &domain.Appointment{
		Date:         strings.TrimSpace(in.Date),
		Time:         strings.TrimSpace(in.Time),
		Specialist:   strings.TrimSpace(in.Specialist),
		Service:      strings.TrimSpace(in.Service),
		StrizhkaType: strings.TrimSpace(in.StrizhkaType),
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
	}
	if a.Date == "" || a.Time == "" || a.Specialist == "" || a.Service == "" || a.Name == "" || a.Phone == "" {
		return nil, ErrMissingFields
	}
	if _, err := schedule.ParseDate(a.Date); err != nil {
		return nil, err
	}
	if _, err := schedule.ParseClock(a.Time); err != nil {
		return nil, err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Friendly pre-check: is the slot visibly occupied?
		if _, err := repo.GetBySlot(ctx, tx, a.Date, a.Time); err == nil {
			return ErrSlotTaken
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		// 2) Insert; the unique index arbitrates concurrent winners.
		if err := repo.CreateAppointment(ctx, tx, a); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns every appointment in creation order. Intended for the
// credential-gated admin endpoint.
func (s *BookingService) List(ctx context.Context) ([]domain.Appointment, error) {
	tr := otel.Tracer("services/BookingService")
	ctx, span := tr.Start(ctx, "List")
	defer span.End()

	return repo.ListAppointments(ctx, s.DB)
}

// isDuplicate attempts to detect unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
