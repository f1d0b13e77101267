// Package daykey derives canonical calendar-day identifiers.
//
// Every day key in the system is computed in one pinned time zone
// (constants.DayKeyZone). A check-in written by the CLI and read by a
// snapshot host must resolve the same instant to the same "YYYY-MM-DD"
// string, so the ambient local zone is never consulted.
package daykey

import (
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/yakusoku/internal/constants"
)

var (
	zoneOnce sync.Once
	zone     *time.Location
)

// Zone returns the pinned day-keying location. If the IANA database is
// unavailable the fixed UTC+9 offset is used; Asia/Tokyo observes no DST
// so the fallback is behaviorally identical.
func Zone() *time.Location {
	zoneOnce.Do(func() {
		loc, err := time.LoadLocation(constants.DayKeyZone)
		if err != nil {
			loc = time.FixedZone(constants.DayKeyZone, 9*60*60)
		}
		zone = loc
	})
	return zone
}

// Key returns the zero-padded YYYY-MM-DD day key for t in the pinned zone.
func Key(t time.Time) string {
	y, m, d := t.In(Zone()).Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// DaysAgo returns now shifted back n calendar days in the pinned zone.
// Calendar arithmetic, not 24h subtraction, so the result stays correct
// across DST transitions should the pinned zone ever observe them.
func DaysAgo(now time.Time, n int) time.Time {
	return now.In(Zone()).AddDate(0, 0, -n)
}

// Parse validates a caller-supplied day key.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, Zone())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// NextReminder returns the next instant at hour o'clock in the pinned
// zone strictly after now.
func NextReminder(now time.Time, hour int) time.Time {
	local := now.In(Zone())
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, Zone())
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
