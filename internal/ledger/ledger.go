// Package ledger is the write path for check-ins and the query surface
// the views read from. All rating writes funnel through one mutex so two
// goroutines in the same process can never interleave a read-modify-write
// on the same (commitment, day) pair; across processes the storage-level
// uniqueness constraint closes the same race.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/stats"
	"github.com/julianstephens/yakusoku/internal/storage"
)

// ErrCommitmentNotFound is returned when a rating write names a
// commitment that does not exist or has been deleted.
var ErrCommitmentNotFound = errors.New("commitment not found")

type Ledger struct {
	mu    sync.Mutex
	store storage.Provider
}

func New(store storage.Provider) *Ledger {
	return &Ledger{store: store}
}

// Set records rating for the commitment on the day keyed by dayKey,
// overwriting any previous rating for that day. This is the
// always-overwrite entry point used by non-interactive callers.
func (l *Ledger) Set(commitmentID, dayKey string, rating models.Rating, note string, now time.Time) (models.Checkin, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.store.GetCommitment(commitmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Checkin{}, ErrCommitmentNotFound
		}
		return models.Checkin{}, err
	}

	c := models.Checkin{
		ID:           uuid.NewString(),
		CommitmentID: commitmentID,
		DayKey:       dayKey,
		Date:         now,
		Rating:       rating,
		Note:         note,
	}
	if err := l.store.UpsertCheckin(c); err != nil {
		return models.Checkin{}, fmt.Errorf("failed to record check-in: %w", err)
	}
	return c, nil
}

// SetToday records rating for the commitment on now's day.
func (l *Ledger) SetToday(commitmentID string, rating models.Rating, note string, now time.Time) (models.Checkin, error) {
	return l.Set(commitmentID, daykey.Key(now), rating, note, now)
}

// Toggle applies the tap semantics of the home view: picking the rating
// already recorded for today clears it, anything else overwrites. The
// returned check-in is nil when the toggle cleared the day.
func (l *Ledger) Toggle(commitmentID string, rating models.Rating, now time.Time) (*models.Checkin, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	day := daykey.Key(now)
	existing, err := l.store.GetCheckin(commitmentID, day)
	switch {
	case err == nil && existing.Rating == rating:
		if err := l.store.DeleteCheckin(existing.ID); err != nil {
			return nil, fmt.Errorf("failed to clear check-in: %w", err)
		}
		return nil, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	if _, err := l.store.GetCommitment(commitmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCommitmentNotFound
		}
		return nil, err
	}

	c := models.Checkin{
		ID:           uuid.NewString(),
		CommitmentID: commitmentID,
		DayKey:       day,
		Date:         now,
		Rating:       rating,
		Note:         existing.Note,
	}
	if err := l.store.UpsertCheckin(c); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}
	return &c, nil
}

// Clear removes the check-in for the commitment on dayKey, if any.
func (l *Ledger) Clear(commitmentID, dayKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	existing, err := l.store.GetCheckin(commitmentID, dayKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	return l.store.DeleteCheckin(existing.ID)
}

// Rating returns the rating recorded for the commitment on dayKey. The
// second return is false when the day has no check-in.
func (l *Ledger) Rating(commitmentID, dayKey string) (models.Rating, bool, error) {
	c, err := l.store.GetCheckin(commitmentID, dayKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return c.Rating, true, nil
}

// TodayRatings returns the ratings recorded on now's day, keyed by
// commitment id. Commitments without a check-in are absent.
func (l *Ledger) TodayRatings(now time.Time) (map[string]models.Rating, error) {
	checkins, err := l.store.CheckinsForDay(daykey.Key(now))
	if err != nil {
		return nil, err
	}
	ratings := make(map[string]models.Rating, len(checkins))
	for _, c := range checkins {
		ratings[c.CommitmentID] = c.Rating
	}
	return ratings, nil
}

// WindowDots returns the last-days dot strip for the commitment ending at
// now's day. Index 0 is the oldest day; nil means no check-in.
func (l *Ledger) WindowDots(commitmentID string, days int, now time.Time) ([]*models.Rating, error) {
	start := daykey.Key(daykey.DaysAgo(now, days-1))
	end := daykey.Key(now)
	checkins, err := l.store.CheckinsForCommitment(commitmentID, start, end)
	if err != nil {
		return nil, err
	}
	return stats.WindowDots(checkins, days, now), nil
}

// Recent returns the commitment's check-ins written at or after since,
// newest first. The filter runs on the wall-clock write timestamp, not
// the day key, so a backfilled day sorts by when it was recorded.
func (l *Ledger) Recent(commitmentID string, since time.Time) ([]models.Checkin, error) {
	return l.store.RecentCheckins(commitmentID, since)
}

// Summary aggregates the window of the given length ending weeksAgo*days
// before now's day. weeksAgo 0 is the current window.
func (l *Ledger) Summary(days, weeksAgo int, now time.Time) (stats.WeeklySummary, error) {
	reference := daykey.DaysAgo(now, weeksAgo*days)
	start := daykey.Key(daykey.DaysAgo(reference, days-1))
	end := daykey.Key(reference)

	checkins, err := l.store.CheckinsBetween(start, end)
	if err != nil {
		return stats.WeeklySummary{}, err
	}
	commitments, err := l.store.ListCommitments(false)
	if err != nil {
		return stats.WeeklySummary{}, err
	}
	return stats.Summarize(len(commitments), checkins, days), nil
}

// DeleteCommitment removes the commitment and its full check-in history.
func (l *Ledger) DeleteCommitment(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.DeleteCommitment(id)
}

// ResetAll wipes the whole store. Storage runs the wipe in one
// transaction, so a failure leaves every record in place.
func (l *Ledger) ResetAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.ResetAll()
}
