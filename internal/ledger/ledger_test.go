package ledger

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/stats"
	"github.com/julianstephens/yakusoku/internal/storage"
)

func setupTestLedger(t *testing.T) (*Ledger, storage.Provider) {
	t.Helper()

	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "yakusoku.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(store), store
}

func addCommitment(t *testing.T, store storage.Provider, title string) models.Commitment {
	t.Helper()

	c := models.Commitment{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := store.AddCommitment(c); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}
	return c
}

// 21:00 JST on 2024-03-15.
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestSetOverwrites(t *testing.T) {
	l, store := setupTestLedger(t)
	c := addCommitment(t, store, "Morning run")

	if _, err := l.SetToday(c.ID, models.RatingMeh, "", testNow); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}
	if _, err := l.SetToday(c.ID, models.RatingGood, "strong finish", testNow); err != nil {
		t.Fatalf("failed to overwrite rating: %v", err)
	}

	got, ok, err := l.Rating(c.ID, "2024-03-15")
	if err != nil {
		t.Fatalf("failed to read rating: %v", err)
	}
	if !ok || got != models.RatingGood {
		t.Errorf("expected good after overwrite, got %v (recorded=%v)", got, ok)
	}

	checkins, err := store.CheckinsForDay("2024-03-15")
	if err != nil {
		t.Fatalf("failed to query check-ins: %v", err)
	}
	if len(checkins) != 1 {
		t.Errorf("expected a single row after overwrite, got %d", len(checkins))
	}
}

func TestSetUnknownCommitment(t *testing.T) {
	l, _ := setupTestLedger(t)

	_, err := l.SetToday(uuid.NewString(), models.RatingGood, "", testNow)
	if !errors.Is(err, ErrCommitmentNotFound) {
		t.Errorf("expected ErrCommitmentNotFound, got %v", err)
	}
}

func TestToggleSemantics(t *testing.T) {
	l, store := setupTestLedger(t)
	c := addCommitment(t, store, "Meditate")

	// First tap records.
	recorded, err := l.Toggle(c.ID, models.RatingGood, testNow)
	if err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if recorded == nil || recorded.Rating != models.RatingGood {
		t.Fatalf("expected first toggle to record good, got %+v", recorded)
	}

	// Tapping a different rating overwrites.
	recorded, err = l.Toggle(c.ID, models.RatingMeh, testNow)
	if err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if recorded == nil || recorded.Rating != models.RatingMeh {
		t.Fatalf("expected second toggle to overwrite with meh, got %+v", recorded)
	}

	// Tapping the recorded rating clears the day.
	recorded, err = l.Toggle(c.ID, models.RatingMeh, testNow)
	if err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if recorded != nil {
		t.Fatalf("expected third toggle to clear, got %+v", recorded)
	}
	if _, ok, _ := l.Rating(c.ID, "2024-03-15"); ok {
		t.Error("expected no rating after clearing toggle")
	}

	// Toggling again after a clear records fresh.
	recorded, err = l.Toggle(c.ID, models.RatingPoor, testNow)
	if err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if recorded == nil || recorded.Rating != models.RatingPoor {
		t.Fatalf("expected toggle after clear to record poor, got %+v", recorded)
	}
}

func TestClearMissingIsNoop(t *testing.T) {
	l, store := setupTestLedger(t)
	c := addCommitment(t, store, "Read")

	if err := l.Clear(c.ID, "2024-03-15"); err != nil {
		t.Errorf("expected clearing an empty day to succeed, got %v", err)
	}
}

func TestTodayRatings(t *testing.T) {
	l, store := setupTestLedger(t)
	run := addCommitment(t, store, "Run")
	read := addCommitment(t, store, "Read")
	addCommitment(t, store, "Journal")

	if _, err := l.SetToday(run.ID, models.RatingGood, "", testNow); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}
	if _, err := l.SetToday(read.ID, models.RatingPoor, "", testNow); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}

	ratings, err := l.TodayRatings(testNow)
	if err != nil {
		t.Fatalf("failed to read today's ratings: %v", err)
	}
	if len(ratings) != 2 {
		t.Fatalf("expected 2 rated commitments, got %d", len(ratings))
	}
	if ratings[run.ID] != models.RatingGood || ratings[read.ID] != models.RatingPoor {
		t.Errorf("unexpected ratings map: %v", ratings)
	}
}

func TestWindowDots(t *testing.T) {
	l, store := setupTestLedger(t)
	c := addCommitment(t, store, "Stretch")

	// Today good, two days ago poor, yesterday unrecorded.
	if _, err := l.SetToday(c.ID, models.RatingGood, "", testNow); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}
	if _, err := l.Set(c.ID, "2024-03-13", models.RatingPoor, "", testNow.AddDate(0, 0, -2)); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}

	dots, err := l.WindowDots(c.ID, 7, testNow)
	if err != nil {
		t.Fatalf("failed to build dots: %v", err)
	}
	if len(dots) != 7 {
		t.Fatalf("expected 7 dots, got %d", len(dots))
	}
	if dots[6] == nil || *dots[6] != models.RatingGood {
		t.Errorf("expected last dot good, got %v", dots[6])
	}
	if dots[5] != nil {
		t.Errorf("expected yesterday unrecorded, got %v", *dots[5])
	}
	if dots[4] == nil || *dots[4] != models.RatingPoor {
		t.Errorf("expected two days ago poor, got %v", dots[4])
	}
}

func TestSummary(t *testing.T) {
	l, store := setupTestLedger(t)
	run := addCommitment(t, store, "Run")
	read := addCommitment(t, store, "Read")

	// Three check-ins across the current week: good, meh, poor.
	if _, err := l.SetToday(run.ID, models.RatingGood, "", testNow); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}
	if _, err := l.Set(run.ID, "2024-03-14", models.RatingMeh, "", testNow.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}
	if _, err := l.Set(read.ID, "2024-03-13", models.RatingPoor, "", testNow.AddDate(0, 0, -2)); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}

	s, err := l.Summary(7, 0, testNow)
	if err != nil {
		t.Fatalf("failed to summarize: %v", err)
	}
	if s.TotalCheckins != 3 {
		t.Errorf("expected 3 check-ins, got %d", s.TotalCheckins)
	}
	// (100 + 50 + 20) / 3
	if s.Score != 56 {
		t.Errorf("expected score 56, got %d", s.Score)
	}
	if s.GoodCount != 1 || s.MehCount != 1 || s.PoorCount != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	// 3 of 2x7 possible slots.
	if s.CompletionRate < 0.214 || s.CompletionRate > 0.215 {
		t.Errorf("expected completion rate ~0.214, got %f", s.CompletionRate)
	}
	if stats.Insight(s) != stats.InsightPoor {
		t.Errorf("expected poor insight bucket for score %d", s.Score)
	}

	// The previous week is empty.
	prev, err := l.Summary(7, 1, testNow)
	if err != nil {
		t.Fatalf("failed to summarize previous week: %v", err)
	}
	if prev.TotalCheckins != 0 || prev.Score != 0 {
		t.Errorf("expected empty previous week, got %+v", prev)
	}
	if stats.Insight(prev) != stats.InsightEmpty {
		t.Error("expected empty insight bucket for empty week")
	}
}

func TestRecentFiltersOnWriteTime(t *testing.T) {
	l, store := setupTestLedger(t)
	c := addCommitment(t, store, "Run")

	if _, err := l.Set(c.ID, "2024-03-12", models.RatingMeh, "", testNow.AddDate(0, 0, -3)); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}
	if _, err := l.Set(c.ID, "2024-03-14", models.RatingGood, "easy pace", testNow.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}
	if _, err := l.SetToday(c.ID, models.RatingPoor, "", testNow); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}

	recent, err := l.Recent(c.ID, testNow.AddDate(0, 0, -2))
	if err != nil {
		t.Fatalf("failed to query recent check-ins: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 check-ins in the window, got %d", len(recent))
	}
	if recent[0].DayKey != "2024-03-15" || recent[1].DayKey != "2024-03-14" {
		t.Errorf("expected newest first, got %s then %s", recent[0].DayKey, recent[1].DayKey)
	}
	if recent[1].Note != "easy pace" {
		t.Errorf("expected note to survive, got %q", recent[1].Note)
	}
}

func TestDeleteCommitmentRemovesHistory(t *testing.T) {
	l, store := setupTestLedger(t)
	c := addCommitment(t, store, "Journal")

	if _, err := l.SetToday(c.ID, models.RatingGood, "", testNow); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}
	if err := l.DeleteCommitment(c.ID); err != nil {
		t.Fatalf("failed to delete commitment: %v", err)
	}

	if _, ok, _ := l.Rating(c.ID, "2024-03-15"); ok {
		t.Error("expected check-in history to be deleted with the commitment")
	}
}

// failingStore stubs the storage contract to simulate a reset that dies
// partway. Only ResetAll is ever called.
type failingStore struct {
	storage.Provider
}

func (f *failingStore) ResetAll() error {
	return errors.New("disk full")
}

func TestResetPropagatesFailure(t *testing.T) {
	l := New(&failingStore{})
	if err := l.ResetAll(); err == nil {
		t.Fatal("expected reset failure to propagate")
	}
}

func TestResetAll(t *testing.T) {
	l, store := setupTestLedger(t)
	c := addCommitment(t, store, "Run")
	if _, err := l.SetToday(c.ID, models.RatingGood, "", testNow); err != nil {
		t.Fatalf("failed to set rating: %v", err)
	}

	if err := l.ResetAll(); err != nil {
		t.Fatalf("failed to reset: %v", err)
	}

	list, err := store.ListCommitments(true)
	if err != nil {
		t.Fatalf("failed to list commitments: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty store after reset, got %d commitments", len(list))
	}
}
