package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/yakusoku/internal/models"
)

const checkinColumns = "id, commitment_id, day_key, date, rating, note"

func scanCheckin(row interface{ Scan(...any) error }) (models.Checkin, error) {
	var c models.Checkin
	var date string
	var rating int

	err := row.Scan(&c.ID, &c.CommitmentID, &c.DayKey, &date, &rating, &c.Note)
	if err != nil {
		return models.Checkin{}, err
	}

	c.Date, err = time.Parse(time.RFC3339, date)
	if err != nil {
		return models.Checkin{}, fmt.Errorf("failed to parse date: %w", err)
	}
	c.Rating = models.Rating(rating)

	return c, nil
}

func (s *Store) GetCheckin(commitmentID, dayKey string) (models.Checkin, error) {
	row := s.db.QueryRow(
		"SELECT "+checkinColumns+" FROM checkins WHERE commitment_id = ? AND day_key = ?",
		commitmentID, dayKey)
	return scanCheckin(row)
}

// UpsertCheckin writes the one row for (commitment_id, day_key). The
// uniqueness constraint turns a lost race between two writers into a
// plain overwrite: last write wins, never a duplicate row.
func (s *Store) UpsertCheckin(c models.Checkin) error {
	_, err := s.db.Exec(`
		INSERT INTO checkins (id, commitment_id, day_key, date, rating, note)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(commitment_id, day_key) DO UPDATE SET
			date = excluded.date,
			rating = excluded.rating,
			note = excluded.note`,
		c.ID, c.CommitmentID, c.DayKey, c.Date.UTC().Format(time.RFC3339), int(c.Rating), c.Note)
	return err
}

func (s *Store) DeleteCheckin(id string) error {
	result, err := s.db.Exec("DELETE FROM checkins WHERE id = ?", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("check-in not found")
	}
	return nil
}

func (s *Store) queryCheckins(query string, args ...any) ([]models.Checkin, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checkins []models.Checkin
	for rows.Next() {
		c, err := scanCheckin(rows)
		if err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}

	return checkins, rows.Err()
}

func (s *Store) CheckinsForDay(dayKey string) ([]models.Checkin, error) {
	return s.queryCheckins(
		"SELECT "+checkinColumns+" FROM checkins WHERE day_key = ?", dayKey)
}

func (s *Store) CheckinsBetween(startDay, endDay string) ([]models.Checkin, error) {
	return s.queryCheckins(
		"SELECT "+checkinColumns+" FROM checkins WHERE day_key >= ? AND day_key <= ? ORDER BY day_key",
		startDay, endDay)
}

func (s *Store) CheckinsForCommitment(commitmentID, startDay, endDay string) ([]models.Checkin, error) {
	return s.queryCheckins(
		"SELECT "+checkinColumns+` FROM checkins
		WHERE commitment_id = ? AND day_key >= ? AND day_key <= ? ORDER BY day_key`,
		commitmentID, startDay, endDay)
}

// RecentCheckins filters on the wall-clock write timestamp, not the day
// key; it backs the "last N days" views. Dates are stored in UTC, so
// the string comparison orders by instant.
func (s *Store) RecentCheckins(commitmentID string, since time.Time) ([]models.Checkin, error) {
	return s.queryCheckins(
		"SELECT "+checkinColumns+" FROM checkins WHERE commitment_id = ? AND date >= ? ORDER BY date DESC",
		commitmentID, since.UTC().Format(time.RFC3339))
}
