package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestSlots_FullBusinessDay(t *testing.T) {
	got, err := Slots("09:00", "22:00", 60*time.Minute)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if len(got) != 13 {
		t.Fatalf("expected 13 slots, got %d: %v", len(got), got)
	}
	if got[0] != "09:00" || got[len(got)-1] != "21:00" {
		t.Fatalf("unexpected bounds: first=%s last=%s", got[0], got[len(got)-1])
	}
}

func TestSlots_StrictlyIncreasingNoDuplicates(t *testing.T) {
	got, err := Slots("09:00", "22:00", 90*time.Minute)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	seen := make(map[string]struct{}, len(got))
	var prev time.Time
	for i, s := range got {
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate slot %s", s)
		}
		seen[s] = struct{}{}
		cur, err := ParseClock(s)
		if err != nil {
			t.Fatalf("slot %q does not round-trip: %v", s, err)
		}
		if i > 0 && !cur.After(prev) {
			t.Fatalf("slots not strictly increasing at index %d: %v", i, got)
		}
		prev = cur
	}
	// Close boundary is excluded: every slot is strictly before 22:00.
	end, _ := ParseClock("22:00")
	if !prev.Before(end) {
		t.Fatalf("last slot %s not before close", got[len(got)-1])
	}
}

func TestSlots_OpenEqualsClose_Empty(t *testing.T) {
	got, err := Slots("09:00", "09:00", 60*time.Minute)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sequence, got %v", got)
	}
}

func TestSlots_OpenAfterClose_Empty(t *testing.T) {
	got, err := Slots("18:00", "09:00", 60*time.Minute)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sequence, got %v", got)
	}
}

func TestSlots_Deterministic(t *testing.T) {
	a, err := Slots("10:00", "13:00", 30*time.Minute)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	b, _ := Slots("10:00", "13:00", 30*time.Minute)
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence differs at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestSlots_MalformedTimes(t *testing.T) {
	cases := []struct{ open, close string }{
		{"9am", "22:00"},
		{"09:00", "late"},
		{"", "22:00"},
		{"25:00", "26:00"},
	}
	for _, tc := range cases {
		if _, err := Slots(tc.open, tc.close, time.Hour); !errors.Is(err, ErrBadTime) {
			t.Fatalf("Slots(%q,%q): expected ErrBadTime, got %v", tc.open, tc.close, err)
		}
	}
}

func TestSlots_BadInterval(t *testing.T) {
	if _, err := Slots("09:00", "22:00", 0); !errors.Is(err, ErrBadInterval) {
		t.Fatalf("expected ErrBadInterval, got %v", err)
	}
	if _, err := Slots("09:00", "22:00", -time.Hour); !errors.Is(err, ErrBadInterval) {
		t.Fatalf("expected ErrBadInterval for negative, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-01-15"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, bad := range []string{"15-01-2025", "2025/01/15", "2025-13-40", "tomorrow"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrBadDate) {
			t.Fatalf("ParseDate(%q): expected ErrBadDate, got %v", bad, err)
		}
	}
}
