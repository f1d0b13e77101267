package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/yakusoku/internal/models"
)

const commitmentColumns = "id, title, pros, cons, if_then, priority, created_at, archived_at"

func scanCommitment(row interface{ Scan(...any) error }) (models.Commitment, error) {
	var c models.Commitment
	var pros, cons, ifThen, archivedAt sql.NullString
	var createdAt string

	err := row.Scan(&c.ID, &c.Title, &pros, &cons, &ifThen, &c.Priority, &createdAt, &archivedAt)
	if err != nil {
		return models.Commitment{}, err
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Commitment{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if pros.Valid {
		c.Pros = &pros.String
	}
	if cons.Valid {
		c.Cons = &cons.String
	}
	if ifThen.Valid {
		c.IfThen = &ifThen.String
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Commitment{}, fmt.Errorf("failed to parse archived_at: %w", err)
		}
		c.ArchivedAt = &t
	}

	return c, nil
}

func (s *Store) AddCommitment(c models.Commitment) error {
	return s.UpdateCommitment(c)
}

func (s *Store) GetCommitment(id string) (models.Commitment, error) {
	row := s.db.QueryRow(
		"SELECT "+commitmentColumns+" FROM commitments WHERE id = ?", id)
	return scanCommitment(row)
}

func (s *Store) GetCommitmentByTitle(title string) (models.Commitment, error) {
	row := s.db.QueryRow(
		"SELECT "+commitmentColumns+" FROM commitments WHERE title = ?", title)
	return scanCommitment(row)
}

func (s *Store) ListCommitments(includeArchived bool) ([]models.Commitment, error) {
	query := "SELECT " + commitmentColumns + " FROM commitments"
	if !includeArchived {
		query += " WHERE archived_at IS NULL"
	}
	query += " ORDER BY priority, created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commitments []models.Commitment
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, err
		}
		commitments = append(commitments, c)
	}

	return commitments, rows.Err()
}

func (s *Store) UpdateCommitment(c models.Commitment) error {
	var pros, cons, ifThen, archivedAt sql.NullString
	if c.Pros != nil {
		pros = sql.NullString{String: *c.Pros, Valid: true}
	}
	if c.Cons != nil {
		cons = sql.NullString{String: *c.Cons, Valid: true}
	}
	if c.IfThen != nil {
		ifThen = sql.NullString{String: *c.IfThen, Valid: true}
	}
	if c.ArchivedAt != nil {
		archivedAt = sql.NullString{String: c.ArchivedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO commitments (id, title, pros, cons, if_then, priority, created_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			pros = excluded.pros,
			cons = excluded.cons,
			if_then = excluded.if_then,
			priority = excluded.priority,
			archived_at = excluded.archived_at`,
		c.ID, c.Title, pros, cons, ifThen, c.Priority, c.CreatedAt.Format(time.RFC3339), archivedAt)
	return err
}

func (s *Store) ArchiveCommitment(id string) error {
	result, err := s.db.Exec(
		"UPDATE commitments SET archived_at = ? WHERE id = ? AND archived_at IS NULL",
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("commitment not found or already archived")
	}
	return nil
}

func (s *Store) UnarchiveCommitment(id string) error {
	result, err := s.db.Exec(
		"UPDATE commitments SET archived_at = NULL WHERE id = ? AND archived_at IS NOT NULL", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("commitment not found or not archived")
	}
	return nil
}

// DeleteCommitment hard-deletes the commitment and all of its check-ins
// in one transaction so no orphaned rows survive.
func (s *Store) DeleteCommitment(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.Exec("DELETE FROM commitments WHERE id = ?", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("commitment with id %s not found", id)
	}

	if _, err := tx.Exec("DELETE FROM checkins WHERE commitment_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete check-ins: %w", err)
	}

	return tx.Commit()
}
