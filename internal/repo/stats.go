// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used for
// conditional responses (ETag generation) on the admin listing endpoint.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dkozyrev/barber-booking-backend/internal/domain"
)

// AppointmentsStats returns aggregate metadata for the appointments table:
// the total row count and the greatest CreatedAt timestamp. When the store
// is empty the count is 0 and maxCreatedAt is nil.
//
// Appointments are never mutated or deleted, so (count, latest CreatedAt)
// uniquely identifies a store state and is safe to use as a cache validator.
func AppointmentsStats(ctx context.Context, db *gorm.DB) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Appointment{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Fetch latest created_at (avoid MAX() -> TEXT in SQLite).
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
