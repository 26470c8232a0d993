package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/dkozyrev/barber-booking-backend/internal/repo"
	"github.com/dkozyrev/barber-booking-backend/internal/schedule"
)

// repoShim adapts the repository free functions to AvailabilityRepo,
// mirroring how the router wires the real service.
type repoShim struct{}

func (repoShim) BookedTimes(ctx context.Context, db *gorm.DB, date string) ([]string, error) {
	return repo.BookedTimes(ctx, db, date)
}

// fakeRepo is an in-memory stand-in for the store, to exercise the service
// without a database.
type fakeRepo struct {
	booked []string
	err    error
}

func (f fakeRepo) BookedTimes(context.Context, *gorm.DB, string) ([]string, error) {
	return f.booked, f.err
}

func TestAvailability_DateRequired(t *testing.T) {
	svc := NewAvailabilityService(nil, fakeRepo{})
	for _, d := range []string{"", "   "} {
		if _, err := svc.AvailableSlots(context.Background(), d); !errors.Is(err, ErrDateRequired) {
			t.Fatalf("expected ErrDateRequired for %q, got %v", d, err)
		}
	}
}

func TestAvailability_MalformedDate(t *testing.T) {
	svc := NewAvailabilityService(nil, fakeRepo{})
	if _, err := svc.AvailableSlots(context.Background(), "01/15/2025"); !errors.Is(err, schedule.ErrBadDate) {
		t.Fatalf("expected ErrBadDate, got %v", err)
	}
}

func TestAvailability_EmptyDay_FullWindow(t *testing.T) {
	svc := NewAvailabilityService(nil, fakeRepo{})
	got, err := svc.AvailableSlots(context.Background(), "2025-01-15")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(got) != 13 || got[0] != "09:00" || got[12] != "21:00" {
		t.Fatalf("expected the full 09:00..21:00 window, got %v", got)
	}
}

func TestAvailability_SubtractsBooked_PreservesOrder(t *testing.T) {
	svc := NewAvailabilityService(nil, fakeRepo{booked: []string{"10:00", "15:00"}})
	got, err := svc.AvailableSlots(context.Background(), "2025-01-15")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(got) != 11 {
		t.Fatalf("expected 11 free slots, got %d: %v", len(got), got)
	}
	full, _ := schedule.Slots(svc.OpenTime, svc.CloseTime, svc.Interval)
	fullSet := make(map[string]struct{}, len(full))
	for _, s := range full {
		fullSet[s] = struct{}{}
	}
	var prev time.Time
	for i, s := range got {
		if s == "10:00" || s == "15:00" {
			t.Fatalf("booked slot %s leaked into availability", s)
		}
		if _, ok := fullSet[s]; !ok {
			t.Fatalf("slot %s not drawn from the full-day sequence", s)
		}
		cur, _ := schedule.ParseClock(s)
		if i > 0 && !cur.After(prev) {
			t.Fatalf("chronological order broken at %d: %v", i, got)
		}
		prev = cur
	}
}

func TestAvailability_UnionWithBookedEqualsFullDay(t *testing.T) {
	booked := []string{"09:00", "13:00", "21:00"}
	svc := NewAvailabilityService(nil, fakeRepo{booked: booked})
	free, err := svc.AvailableSlots(context.Background(), "2025-01-15")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}

	union := make(map[string]struct{}, len(free)+len(booked))
	for _, s := range free {
		union[s] = struct{}{}
	}
	for _, s := range booked {
		union[s] = struct{}{}
	}
	full, _ := schedule.Slots(svc.OpenTime, svc.CloseTime, svc.Interval)
	if len(union) != len(full) {
		t.Fatalf("free ∪ booked != full day: %d vs %d", len(union), len(full))
	}
	for _, s := range full {
		if _, ok := union[s]; !ok {
			t.Fatalf("slot %s missing from union", s)
		}
	}
}

func TestAvailability_RepoError_Propagates(t *testing.T) {
	boom := errors.New("disk on fire")
	svc := NewAvailabilityService(nil, fakeRepo{err: boom})
	if _, err := svc.AvailableSlots(context.Background(), "2025-01-15"); !errors.Is(err, boom) {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}

func TestAvailability_EndToEnd_BookingRemovesSlot(t *testing.T) {
	db := newTestDB(t)
	booking := &BookingService{DB: db}
	avail := NewAvailabilityService(db, repoShim{})

	a, err := booking.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if a.ID != 1 {
		t.Fatalf("first booking in an empty store should get id 1, got %d", a.ID)
	}

	free, err := avail.AvailableSlots(context.Background(), "2025-01-15")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(free) != 12 {
		t.Fatalf("expected 12 free slots after one booking, got %d", len(free))
	}
	for _, s := range free {
		if s == "09:00" {
			t.Fatalf("booked 09:00 still offered: %v", free)
		}
	}

	// Another date is unaffected.
	other, err := avail.AvailableSlots(context.Background(), "2025-01-16")
	if err != nil {
		t.Fatalf("AvailableSlots other date: %v", err)
	}
	if len(other) != 13 {
		t.Fatalf("other date should have the full window, got %d", len(other))
	}
}

func TestAvailability_CustomWindow(t *testing.T) {
	svc := &AvailabilityService{
		Repo:      fakeRepo{},
		OpenTime:  "10:00",
		CloseTime: "12:00",
		Interval:  30 * time.Minute,
	}
	got, err := svc.AvailableSlots(context.Background(), "2025-01-15")
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	want := []string{"10:00", "10:30", "11:00", "11:30"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
