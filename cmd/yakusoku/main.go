package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/yakusoku/internal/cli"
	"github.com/julianstephens/yakusoku/internal/keyring"
	"github.com/julianstephens/yakusoku/internal/ledger"
	"github.com/julianstephens/yakusoku/internal/logger"
	"github.com/julianstephens/yakusoku/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path or postgres:// connection string." type:"path" default:"~/.config/yakusoku/yakusoku.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize yakusoku storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add       cli.AddCmd       `cmd:"" help:"Add a commitment."`
	List      cli.ListCmd      `cmd:"" help:"List commitments."`
	Edit      cli.EditCmd      `cmd:"" help:"Edit a commitment."`
	Archive   cli.ArchiveCmd   `cmd:"" help:"Archive a commitment, keeping its history."`
	Unarchive cli.UnarchiveCmd `cmd:"" help:"Bring an archived commitment back."`
	Delete    cli.DeleteCmd    `cmd:"" help:"Delete a commitment and its history."`
	Checkin   cli.CheckinCmd   `cmd:"" help:"Record today's rating for a commitment."`
	Uncheck   cli.UncheckCmd   `cmd:"" help:"Clear a recorded rating."`
	Today     cli.TodayCmd     `cmd:"" help:"Show today's check-in status."`
	Log       cli.LogCmd       `cmd:"" help:"Show the recent check-in history."`
	Report    cli.ReportCmd    `cmd:"" help:"Show the weekly report."`
	Snapshot  cli.SnapshotCmd  `cmd:"" help:"Dump the widget snapshot as JSON."`
	Remind    cli.RemindCmd    `cmd:"" help:"Send a check-in reminder if commitments are unrated."`
	Settings  cli.SettingsCmd  `cmd:"" help:"Show or change settings."`
	Reset     cli.ResetCmd     `cmd:"" help:"Delete all data."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks."`
	Backup    struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a database backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
	} `cmd:"" help:"Manage local database backups."`
	Connection cli.ConnectionCmd `cmd:"" help:"Manage cloud-sync database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("yakusoku"),
		kong.Description("Personal commitment tracker: daily check-ins against promises to yourself"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// A postgres:// config has no local directory; let the logger fall
	// back to the user config dir.
	logDir := ""
	if !storage.IsPostgresTarget(CLI.Config) {
		logDir = filepath.Dir(CLI.Config)
	}
	if err := logger.Init(logDir, CLI.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store, err := selectStore(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:  store,
		Ledger: ledger.New(store),
		Now:    time.Now,
	}

	if err := ctx.Run(appCtx); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// selectStore picks the backend. An explicit postgres config wins; a
// plain path uses the local database unless cloud sync is enabled and
// credentials exist in the environment or keyring.
func selectStore(config string) (storage.Provider, error) {
	if storage.IsPostgresTarget(config) {
		if storage.HasEmbeddedCredentials(config) {
			return nil, errors.New("connection string contains a password; store it with 'yakusoku connection set' or in YAKUSOKU_DB_URL instead")
		}
		return storage.NewPostgresStore(config), nil
	}

	local := storage.NewSQLiteStore(config)

	// Peek at the local settings to see whether cloud sync is on. A
	// missing or uninitialized database just means local mode.
	if err := local.Load(); err != nil {
		return local, nil
	}
	settings, err := local.GetSettings()
	if err != nil || !settings.UseCloudSync {
		return local, nil
	}

	if connStr := os.Getenv("YAKUSOKU_DB_URL"); connStr != "" {
		local.Close()
		return storage.NewPostgresStore(connStr), nil
	}
	connStr, err := keyring.GetConnectionString()
	if err == nil {
		local.Close()
		return storage.NewPostgresStore(connStr), nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		logger.Warn("cloud sync enabled but no connection string found; using local database")
		return local, nil
	}
	logger.Warn("keyring unavailable; using local database", "error", err)
	return local, nil
}
