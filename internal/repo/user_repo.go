// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User
// (admin credential) model.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dkozyrev/barber-booking-backend/internal/domain"
)

// SeedCredential inserts the admin credential pair unless a row with the
// same username already exists (insert-if-absent, like the original
// INSERT OR IGNORE). An existing row is left untouched, so a restart never
// overwrites a password that was changed out of band.
func SeedCredential(ctx context.Context, db *gorm.DB, username, password string) error {
	var existing domain.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.WithContext(ctx).Create(&domain.User{
		Username: username,
		Password: password,
	}).Error
}

// FindCredential fetches the credential row for username, or ErrNotFound.
func FindCredential(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
