// Package services – AuthService
//
// This file implements the credential gate for the admin listing endpoint.
// Deliberately minimal: a direct match against the single seeded credential
// pair, no sessions, no tokens.
package services

import (
	"context"
	"crypto/subtle"
	"errors"

	"gorm.io/gorm"

	"github.com/dkozyrev/barber-booking-backend/internal/repo"
)

// AuthService verifies HTTP Basic credentials against the users table.
type AuthService struct {
	// DB is the database handle used for credential lookups.
	DB *gorm.DB
}

// Verify checks the username/password pair against the seeded credential.
// A missing user and a wrong password both yield ErrBadCredentials; other
// store failures propagate unchanged.
func (s *AuthService) Verify(ctx context.Context, username, password string) error {
	u, err := repo.FindCredential(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrBadCredentials
		}
		return err
	}
	// Constant-time comparison; the password is the secret here.
	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return ErrBadCredentials
	}
	return nil
}
