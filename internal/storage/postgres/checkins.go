package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/yakusoku/internal/models"
)

const checkinColumns = "id, commitment_id, day_key, date, rating, note"

func scanCheckin(row interface{ Scan(...any) error }) (models.Checkin, error) {
	var c models.Checkin
	var rating int

	err := row.Scan(&c.ID, &c.CommitmentID, &c.DayKey, &c.Date, &rating, &c.Note)
	if err != nil {
		return models.Checkin{}, err
	}
	c.Rating = models.Rating(rating)

	return c, nil
}

func (s *Store) GetCheckin(commitmentID, dayKey string) (models.Checkin, error) {
	row := s.db.QueryRow(
		"SELECT "+checkinColumns+" FROM checkins WHERE commitment_id = $1 AND day_key = $2",
		commitmentID, dayKey)
	return scanCheckin(row)
}

func (s *Store) UpsertCheckin(c models.Checkin) error {
	_, err := s.db.Exec(`
		INSERT INTO checkins (id, commitment_id, day_key, date, rating, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (commitment_id, day_key) DO UPDATE SET
			date = excluded.date,
			rating = excluded.rating,
			note = excluded.note`,
		c.ID, c.CommitmentID, c.DayKey, c.Date, int(c.Rating), c.Note)
	return err
}

func (s *Store) DeleteCheckin(id string) error {
	result, err := s.db.Exec("DELETE FROM checkins WHERE id = $1", id)
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
		"SELECT "+checkinColumns+" FROM checkins WHERE day_key = $1", dayKey)
}

func (s *Store) CheckinsBetween(startDay, endDay string) ([]models.Checkin, error) {
	return s.queryCheckins(
		"SELECT "+checkinColumns+" FROM checkins WHERE day_key >= $1 AND day_key <= $2 ORDER BY day_key",
		startDay, endDay)
}

func (s *Store) CheckinsForCommitment(commitmentID, startDay, endDay string) ([]models.Checkin, error) {
	return s.queryCheckins(
		"SELECT "+checkinColumns+` FROM checkins
		WHERE commitment_id = $1 AND day_key >= $2 AND day_key <= $3 ORDER BY day_key`,
		commitmentID, startDay, endDay)
}

func (s *Store) RecentCheckins(commitmentID string, since time.Time) ([]models.Checkin, error) {
	return s.queryCheckins(
		"SELECT "+checkinColumns+" FROM checkins WHERE commitment_id = $1 AND date >= $2 ORDER BY date DESC",
		commitmentID, since)
}
