// Package services – AvailabilityService
//
// This file implements the AvailabilityService, which answers "which slots
// are still free on a given date". It validates the date, fetches the booked
// times from the repository (one read, no locking; single occupancy is
// enforced at write time by BookingService), and subtracts them from the
// full-day slot sequence produced by the schedule package.
package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dkozyrev/barber-booking-backend/internal/schedule"
)

// AvailabilityRepo defines the repository contract required by
// AvailabilityService.
type AvailabilityRepo interface {
	// BookedTimes returns the time values already reserved for date.
	BookedTimes(ctx context.Context, db *gorm.DB, date string) ([]string, error)
}

// AvailabilityService computes free slots for a business day. It is
// read-only and safe for concurrent use.
type AvailabilityService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the appointment repository used by this service.
	Repo AvailabilityRepo

	// OpenTime / CloseTime bound the business window ("HH:MM").
	OpenTime  string
	CloseTime string
	// Interval is the spacing between bookable time points.
	Interval time.Duration
}

// NewAvailabilityService constructs an AvailabilityService with the default
// business window: open 09:00, close 22:00, one-hour slots.
func NewAvailabilityService(db *gorm.DB, r AvailabilityRepo) *AvailabilityService {
	return &AvailabilityService{
		DB:        db,
		Repo:      r,
		OpenTime:  "09:00",
		CloseTime: "22:00",
		Interval:  60 * time.Minute,
	}
}

// AvailableSlots returns the free slots for date in chronological order:
// the full-day sequence minus the times already booked.
//
// An empty date yields ErrDateRequired; a date that is not "YYYY-MM-DD"
// yields schedule.ErrBadDate. Both map to client errors at the boundary.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	tr := otel.Tracer("services/AvailabilityService")
	ctx, span := tr.Start(ctx, "AvailableSlots",
		trace.WithAttributes(attribute.String("booking.date", date)),
	)
	defer span.End()

	date = strings.TrimSpace(date)
	if date == "" {
		return nil, ErrDateRequired
	}
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}

	all, err := schedule.Slots(s.OpenTime, s.CloseTime, s.Interval)
	if err != nil {
		return nil, err
	}

	booked, err := s.Repo.BookedTimes(ctx, s.DB, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(all))
	for _, slot := range all {
		if _, busy := taken[slot]; !busy {
			free = append(free, slot)
		}
	}
	return free, nil
}
