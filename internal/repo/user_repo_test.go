package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/dkozyrev/barber-booking-backend/internal/domain"
)

func TestSeedCredential_Idempotent(t *testing.T) {
	db := newRepoDB(t, &domain.User{})
	ctx := context.Background()

	if err := SeedCredential(ctx, db, "admin", "s3cret"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	// Re-seeding with a different password must leave the original untouched.
	if err := SeedCredential(ctx, db, "admin", "other"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var total int64
	if err := db.Model(&domain.User{}).Count(&total).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected exactly 1 user row, got %d", total)
	}

	u, err := FindCredential(ctx, db, "admin")
	if err != nil {
		t.Fatalf("FindCredential: %v", err)
	}
	if u.Password != "s3cret" {
		t.Fatalf("seed overwrote existing password: %q", u.Password)
	}
}

func TestFindCredential_Missing(t *testing.T) {
	db := newRepoDB(t, &domain.User{})
	if _, err := FindCredential(context.Background(), db, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeedCredential_Error_NoTable(t *testing.T) {
	db := newRepoDB(t /* no migrations */)
	if err := SeedCredential(context.Background(), db, "admin", "x"); err == nil {
		t.Fatalf("expected error when table missing")
	}
}
