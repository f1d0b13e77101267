package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/yakusoku/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "yakusoku.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func testCommitment(title string) models.Commitment {
	return models.Commitment{
		ID:        uuid.NewString(),
		Title:     title,
		CreatedAt: time.Now(),
	}
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected error loading uninitialized store")
	}
}

func TestCommitmentRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	pros := "more energy"
	c := testCommitment("Morning run")
	c.Pros = &pros
	c.Priority = 2

	if err := store.AddCommitment(c); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}

	got, err := store.GetCommitment(c.ID)
	if err != nil {
		t.Fatalf("failed to get commitment: %v", err)
	}
	if got.Title != "Morning run" {
		t.Errorf("expected title %q, got %q", "Morning run", got.Title)
	}
	if got.Pros == nil || *got.Pros != pros {
		t.Errorf("expected pros %q, got %v", pros, got.Pros)
	}
	if got.Cons != nil {
		t.Errorf("expected nil cons, got %q", *got.Cons)
	}
	if got.Priority != 2 {
		t.Errorf("expected priority 2, got %d", got.Priority)
	}

	byTitle, err := store.GetCommitmentByTitle("Morning run")
	if err != nil {
		t.Fatalf("failed to get commitment by title: %v", err)
	}
	if byTitle.ID != c.ID {
		t.Errorf("expected id %s, got %s", c.ID, byTitle.ID)
	}
}

func TestListCommitmentsExcludesArchived(t *testing.T) {
	store := setupTestStore(t)

	active := testCommitment("Active")
	archived := testCommitment("Archived")

	if err := store.AddCommitment(active); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}
	if err := store.AddCommitment(archived); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}
	if err := store.ArchiveCommitment(archived.ID); err != nil {
		t.Fatalf("failed to archive commitment: %v", err)
	}

	list, err := store.ListCommitments(false)
	if err != nil {
		t.Fatalf("failed to list commitments: %v", err)
	}
	if len(list) != 1 || list[0].ID != active.ID {
		t.Errorf("expected only the active commitment, got %d entries", len(list))
	}

	all, err := store.ListCommitments(true)
	if err != nil {
		t.Fatalf("failed to list all commitments: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 commitments including archived, got %d", len(all))
	}
}

func TestArchiveUnarchive(t *testing.T) {
	store := setupTestStore(t)

	c := testCommitment("Stretch")
	if err := store.AddCommitment(c); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}

	if err := store.ArchiveCommitment(c.ID); err != nil {
		t.Fatalf("failed to archive: %v", err)
	}
	got, err := store.GetCommitment(c.ID)
	if err != nil {
		t.Fatalf("failed to get commitment: %v", err)
	}
	if got.ArchivedAt == nil {
		t.Error("expected archived_at to be set")
	}

	// Archiving twice is an error.
	if err := store.ArchiveCommitment(c.ID); err == nil {
		t.Error("expected error archiving an archived commitment")
	}

	if err := store.UnarchiveCommitment(c.ID); err != nil {
		t.Fatalf("failed to unarchive: %v", err)
	}
	got, err = store.GetCommitment(c.ID)
	if err != nil {
		t.Fatalf("failed to get commitment: %v", err)
	}
	if got.ArchivedAt != nil {
		t.Error("expected archived_at to be cleared")
	}
}

func TestUpsertCheckinKeepsOneRowPerDay(t *testing.T) {
	store := setupTestStore(t)

	c := testCommitment("Read")
	if err := store.AddCommitment(c); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}

	day := "2024-03-15"
	first := models.Checkin{
		ID:           uuid.NewString(),
		CommitmentID: c.ID,
		DayKey:       day,
		Date:         time.Now(),
		Rating:       models.RatingMeh,
	}
	if err := store.UpsertCheckin(first); err != nil {
		t.Fatalf("failed to upsert check-in: %v", err)
	}

	// A second write for the same commitment and day replaces the row.
	second := first
	second.ID = uuid.NewString()
	second.Rating = models.RatingGood
	second.Note = "felt great"
	if err := store.UpsertCheckin(second); err != nil {
		t.Fatalf("failed to upsert check-in again: %v", err)
	}

	checkins, err := store.CheckinsForDay(day)
	if err != nil {
		t.Fatalf("failed to query check-ins: %v", err)
	}
	if len(checkins) != 1 {
		t.Fatalf("expected exactly 1 check-in for the day, got %d", len(checkins))
	}
	if checkins[0].Rating != models.RatingGood {
		t.Errorf("expected rating good after overwrite, got %s", checkins[0].Rating)
	}
	if checkins[0].Note != "felt great" {
		t.Errorf("expected note to be replaced, got %q", checkins[0].Note)
	}
	// The original row id survives the conflict path.
	if checkins[0].ID != first.ID {
		t.Errorf("expected id %s to survive upsert, got %s", first.ID, checkins[0].ID)
	}
}

func TestCheckinQueries(t *testing.T) {
	store := setupTestStore(t)

	c := testCommitment("Meditate")
	if err := store.AddCommitment(c); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}

	days := []string{"2024-03-13", "2024-03-14", "2024-03-15"}
	for i, day := range days {
		ci := models.Checkin{
			ID:           uuid.NewString(),
			CommitmentID: c.ID,
			DayKey:       day,
			Date:         time.Date(2024, 3, 13+i, 21, 0, 0, 0, time.UTC),
			Rating:       models.RatingGood,
		}
		if err := store.UpsertCheckin(ci); err != nil {
			t.Fatalf("failed to upsert check-in: %v", err)
		}
	}

	between, err := store.CheckinsBetween("2024-03-14", "2024-03-15")
	if err != nil {
		t.Fatalf("failed to query between: %v", err)
	}
	if len(between) != 2 {
		t.Errorf("expected 2 check-ins in range, got %d", len(between))
	}

	forCommitment, err := store.CheckinsForCommitment(c.ID, "2024-03-13", "2024-03-15")
	if err != nil {
		t.Fatalf("failed to query for commitment: %v", err)
	}
	if len(forCommitment) != 3 {
		t.Errorf("expected 3 check-ins for commitment, got %d", len(forCommitment))
	}

	recent, err := store.RecentCheckins(c.ID, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("failed to query recent: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 recent check-ins, got %d", len(recent))
	}
	if len(recent) == 2 && !recent[0].Date.After(recent[1].Date) {
		t.Error("expected recent check-ins in descending date order")
	}
}

func TestDeleteCommitmentCascades(t *testing.T) {
	store := setupTestStore(t)

	keep := testCommitment("Keep")
	drop := testCommitment("Drop")
	for _, c := range []models.Commitment{keep, drop} {
		if err := store.AddCommitment(c); err != nil {
			t.Fatalf("failed to add commitment: %v", err)
		}
		ci := models.Checkin{
			ID:           uuid.NewString(),
			CommitmentID: c.ID,
			DayKey:       "2024-03-15",
			Date:         time.Now(),
			Rating:       models.RatingGood,
		}
		if err := store.UpsertCheckin(ci); err != nil {
			t.Fatalf("failed to upsert check-in: %v", err)
		}
	}

	if err := store.DeleteCommitment(drop.ID); err != nil {
		t.Fatalf("failed to delete commitment: %v", err)
	}

	if _, err := store.GetCommitment(drop.ID); err == nil {
		t.Error("expected deleted commitment to be gone")
	}

	checkins, err := store.CheckinsForDay("2024-03-15")
	if err != nil {
		t.Fatalf("failed to query check-ins: %v", err)
	}
	if len(checkins) != 1 || checkins[0].CommitmentID != keep.ID {
		t.Errorf("expected only the kept commitment's check-in to survive, got %d", len(checkins))
	}

	if err := store.DeleteCommitment(drop.ID); err == nil {
		t.Error("expected error deleting a missing commitment")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	// Init writes defaults.
	defaults, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get default settings: %v", err)
	}
	if defaults.PreferredTheme == "" {
		t.Error("expected a default theme")
	}

	updated := models.Settings{
		UseCloudSync:        true,
		PreferredTheme:      "zen",
		ReminderHour:        20,
		EnableNotifications: false,
	}
	if err := store.SaveSettings(updated); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if got != updated {
		t.Errorf("expected %+v, got %+v", updated, got)
	}
}

func TestResetFailureLeavesStateIntact(t *testing.T) {
	store := setupTestStore(t)

	c := testCommitment("Journal")
	if err := store.AddCommitment(c); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}
	ci := models.Checkin{
		ID:           uuid.NewString(),
		CommitmentID: c.ID,
		DayKey:       "2024-03-15",
		Date:         time.Now(),
		Rating:       models.RatingGood,
	}
	if err := store.UpsertCheckin(ci); err != nil {
		t.Fatalf("failed to upsert check-in: %v", err)
	}

	// Make the settings wipe fail so the transaction aborts after the
	// check-in and commitment tables were already cleared.
	trigger := `CREATE TRIGGER block_settings_wipe BEFORE DELETE ON settings
		BEGIN SELECT RAISE(ABORT, 'wipe blocked'); END`
	if _, err := store.db.Exec(trigger); err != nil {
		t.Fatalf("failed to install trigger: %v", err)
	}

	if err := store.ResetAll(); err == nil {
		t.Fatal("expected reset to fail")
	}

	// The rollback restores every table, not just the one that failed.
	if _, err := store.GetCommitment(c.ID); err != nil {
		t.Errorf("expected commitment to survive a failed reset: %v", err)
	}
	checkins, err := store.CheckinsForDay("2024-03-15")
	if err != nil {
		t.Fatalf("failed to query check-ins: %v", err)
	}
	if len(checkins) != 1 {
		t.Errorf("expected check-in to survive a failed reset, got %d rows", len(checkins))
	}
	if _, err := store.GetSettings(); err != nil {
		t.Errorf("expected settings to survive a failed reset: %v", err)
	}
}

func TestResetAll(t *testing.T) {
	store := setupTestStore(t)

	c := testCommitment("Journal")
	if err := store.AddCommitment(c); err != nil {
		t.Fatalf("failed to add commitment: %v", err)
	}
	ci := models.Checkin{
		ID:           uuid.NewString(),
		CommitmentID: c.ID,
		DayKey:       "2024-03-15",
		Date:         time.Now(),
		Rating:       models.RatingPoor,
	}
	if err := store.UpsertCheckin(ci); err != nil {
		t.Fatalf("failed to upsert check-in: %v", err)
	}

	if err := store.ResetAll(); err != nil {
		t.Fatalf("failed to reset: %v", err)
	}

	list, err := store.ListCommitments(true)
	if err != nil {
		t.Fatalf("failed to list commitments: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no commitments after reset, got %d", len(list))
	}

	checkins, err := store.CheckinsForDay("2024-03-15")
	if err != nil {
		t.Fatalf("failed to query check-ins: %v", err)
	}
	if len(checkins) != 0 {
		t.Errorf("expected no check-ins after reset, got %d", len(checkins))
	}

	if _, err := store.GetSettings(); err == nil {
		t.Error("expected settings to be wiped by reset")
	}
}
