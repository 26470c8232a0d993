package repo

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkozyrev/barber-booking-backend/internal/domain"
)

func TestOpenSQLite_CreatesFileAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	ctx := context.Background()
	a := &domain.Appointment{
		Date: "2025-05-01", Time: "09:00",
		Specialist: "Ivan", Service: "Haircut",
		Name: "Peter", Phone: "+7 (000) 000-00-00",
	}
	if err := CreateAppointment(ctx, db, a); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	// The (date, time) unique index survives migration on a real file DB.
	dup := &domain.Appointment{
		Date: "2025-05-01", Time: "09:00",
		Specialist: "Petr", Service: "Shave",
		Name: "Anna", Phone: "+7 (111) 111-11-11",
	}
	err = CreateAppointment(ctx, db, dup)
	if err == nil {
		t.Fatal("duplicate slot insert succeeded, want unique constraint error")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "unique") {
		t.Fatalf("unexpected error for duplicate slot: %v", err)
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	_, err := OpenSQLite(filepath.Join(t.TempDir(), "nope", "booking.db"))
	if err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}
