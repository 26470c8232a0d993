// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Appointment model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an appointment is not found, functions return
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated. The unique-index violation on
//     (date, time) is interpreted by the service layer, not here.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dkozyrev/barber-booking-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateAppointment inserts the given appointment row. The store assigns a
// monotonically increasing ID; CreatedAt is set to UTC.
//
// A second insert for the same (date, time) pair violates
// ux_appointments_slot and surfaces as a constraint error, which the caller
// maps to the conflict sentinel.
func CreateAppointment(ctx context.Context, db *gorm.DB, a *domain.Appointment) error {
	a.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(a).Error
}

// GetBySlot fetches the appointment occupying (date, timeOfDay), or
// ErrNotFound when the slot is free.
func GetBySlot(ctx context.Context, db *gorm.DB, date, timeOfDay string) (*domain.Appointment, error) {
	var a domain.Appointment
	err := db.WithContext(ctx).
		Where("date = ? AND time = ?", date, timeOfDay).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// BookedTimes returns the time values already reserved for date, in
// chronological slot-creation order. An empty slice means the whole day
// is free.
func BookedTimes(ctx context.Context, db *gorm.DB, date string) ([]string, error) {
	var out []string
	err := db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("date = ?", date).
		Order("time ASC").
		Pluck("time", &out).Error
	return out, err
}

// ListAppointments returns every appointment ordered by ID ascending
// (creation order). It returns an empty slice when the store is empty.
func ListAppointments(ctx context.Context, db *gorm.DB) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := db.WithContext(ctx).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// CountAppointments returns the total number of appointment rows.
func CountAppointments(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Count(&total).Error
	return total, err
}
