// Package storage defines the persistence contract shared by the SQLite
// and PostgreSQL backends.
package storage

import (
	"net/url"
	"strings"
	"time"

	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/storage/postgres"
	"github.com/julianstephens/yakusoku/internal/storage/sqlite"
)

// Provider is the storage contract. Not-found conditions are reported as
// errors wrapping sql.ErrNoRows; absence handling is the caller's job.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Commitments
	AddCommitment(models.Commitment) error
	GetCommitment(id string) (models.Commitment, error)
	GetCommitmentByTitle(title string) (models.Commitment, error)
	ListCommitments(includeArchived bool) ([]models.Commitment, error)
	UpdateCommitment(models.Commitment) error
	ArchiveCommitment(id string) error
	UnarchiveCommitment(id string) error
	// DeleteCommitment hard-deletes the commitment and every check-in it
	// owns in a single transaction.
	DeleteCommitment(id string) error

	// Check-ins
	GetCheckin(commitmentID, dayKey string) (models.Checkin, error)
	// UpsertCheckin inserts or overwrites the row for the check-in's
	// (commitment_id, day_key) pair; the storage-level uniqueness
	// constraint guarantees a single row survives concurrent writers.
	UpsertCheckin(models.Checkin) error
	DeleteCheckin(id string) error
	CheckinsForDay(dayKey string) ([]models.Checkin, error)
	CheckinsBetween(startDay, endDay string) ([]models.Checkin, error)
	CheckinsForCommitment(commitmentID, startDay, endDay string) ([]models.Checkin, error)
	RecentCheckins(commitmentID string, since time.Time) ([]models.Checkin, error)

	// ResetAll wipes commitments, check-ins, and settings in one
	// transaction. A failed reset leaves prior state intact.
	ResetAll() error

	// StorePath returns the database path or connection target.
	StorePath() string
}

// NewSQLiteStore returns the default local backend.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore returns the server-side backend used when the store
// lives on a shared PostgreSQL instance.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresTarget reports whether a config value names a PostgreSQL
// database rather than a local file.
func IsPostgresTarget(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Those belong in the environment or the OS keyring,
// not in shell history.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresTarget(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User == nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}

	// DSN format: space-separated key=value pairs.
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}
