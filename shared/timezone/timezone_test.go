package timezone_test

import (
	"smeraldo/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if _, err := time.Parse("2006-01-02", today); err != nil {
		t.Errorf("Today() returned %q, want a YYYY-MM-DD date: %v", today, err)
	}

	want := timezone.Now().Format("2006-01-02")
	if today != want {
		t.Errorf("Today() = %q, want %q", today, want)
	}
}

func TestDayBoundary(t *testing.T) {
	// 22:00 UTC is already the next calendar date at the front desk (UTC+7).
	lateUTC := time.Date(2026, 1, 1, 22, 0, 0, 0, time.UTC)

	got := timezone.Format(lateUTC, "2006-01-02")
	if got != "2026-01-02" {
		t.Errorf("Format(22:00 UTC) = %q, want %q", got, "2026-01-02")
	}

	earlyUTC := time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC)
	if got := timezone.Format(earlyUTC, "2006-01-02"); got != "2026-01-01" {
		t.Errorf("Format(03:00 UTC) = %q, want %q", got, "2026-01-01")
	}
}
