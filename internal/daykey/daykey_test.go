package daykey

import (
	"testing"
	"time"
)

func TestKeyIsPinnedToOneZone(t *testing.T) {
	// 2024-03-15T23:30+09:00 is already March 16th in no zone east of
	// Tokyo that matters here; every process must agree it is the 15th.
	tokyo := time.FixedZone("JST", 9*60*60)
	instant := time.Date(2024, 3, 15, 23, 30, 0, 0, tokyo)

	if got := Key(instant); got != "2024-03-15" {
		t.Errorf("expected 2024-03-15, got %s", got)
	}

	// The same instant expressed in UTC (14:30Z) must yield the same key.
	if got := Key(instant.UTC()); got != "2024-03-15" {
		t.Errorf("expected 2024-03-15 for UTC rendering of same instant, got %s", got)
	}

	// An instant late on the 15th UTC is already the 16th in Tokyo.
	lateUTC := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	if got := Key(lateUTC); got != "2024-03-16" {
		t.Errorf("expected 2024-03-16, got %s", got)
	}
}

func TestKeyZeroPadding(t *testing.T) {
	instant := time.Date(2024, 1, 5, 12, 0, 0, 0, Zone())
	if got := Key(instant); got != "2024-01-05" {
		t.Errorf("expected 2024-01-05, got %s", got)
	}
}

func TestKeyIsDeterministic(t *testing.T) {
	instant := time.Date(2025, 8, 28, 3, 4, 5, 0, time.UTC)
	first := Key(instant)
	for i := 0; i < 10; i++ {
		if got := Key(instant); got != first {
			t.Fatalf("key changed between calls: %s vs %s", first, got)
		}
	}
}

func TestDaysAgoCalendarArithmetic(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, Zone())

	if got := Key(DaysAgo(now, 1)); got != "2024-02-29" {
		t.Errorf("expected leap day 2024-02-29, got %s", got)
	}
	if got := Key(DaysAgo(now, 0)); got != "2024-03-01" {
		t.Errorf("expected same day for n=0, got %s", got)
	}
	if got := Key(DaysAgo(now, 7)); got != "2024-02-23" {
		t.Errorf("expected 2024-02-23, got %s", got)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []string{"2024-3-15", "20240315", "yesterday", "2024-13-01", ""}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("expected error for %q, got nil", c)
		}
	}

	got, err := Parse("2024-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Key(got) != "2024-03-15" {
		t.Errorf("parse/key round trip failed: %s", Key(got))
	}
}

func TestNextReminder(t *testing.T) {
	// Before the reminder hour: today.
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, Zone())
	next := NextReminder(now, 11)
	if Key(next) != "2024-03-15" || next.Hour() != 11 {
		t.Errorf("expected 11:00 same day, got %v", next)
	}

	// After the reminder hour: tomorrow.
	now = time.Date(2024, 3, 15, 12, 0, 0, 0, Zone())
	next = NextReminder(now, 11)
	if Key(next) != "2024-03-16" {
		t.Errorf("expected next day, got %v", next)
	}

	// Exactly at the reminder hour: strictly after, so tomorrow.
	now = time.Date(2024, 3, 15, 11, 0, 0, 0, Zone())
	next = NextReminder(now, 11)
	if Key(next) != "2024-03-16" {
		t.Errorf("expected next day for exact hour, got %v", next)
	}
}
