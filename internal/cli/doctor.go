package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/yakusoku/internal/backup"
	"github.com/julianstephens/yakusoku/internal/constants"
	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/keyring"
	"github.com/julianstephens/yakusoku/internal/storage"
)

var listProcessesFunc = ps.Processes

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: store reachable, schema version compatible. Load runs the
	// version validation.
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		dbReachable = true
	}

	// Check 2: data validation (only with a reachable store).
	if dbReachable {
		if err := checkData(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	// Check 3: backups present (local backend only, warning only).
	if storage.IsPostgresTarget(ctx.Store.StorePath()) {
		fmt.Printf("⊘ Backups present: SKIPPED (server-side database)\n")
	} else if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: keyring availability, relevant for cloud sync.
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable; cloud sync credentials cannot be stored\n")
	}

	// Check 5: other yakusoku processes sharing the store. Concurrent
	// writes converge on the storage uniqueness constraint, but a second
	// process can hold a stale view of today.
	if pids, err := otherInstancePids(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else if len(pids) > 0 {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   another yakusoku process is running (pids %v) and may write the same store\n", pids)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	// Check 6: clock and day-key zone sanity.
	if err := checkClock(ctx); err != nil {
		fmt.Printf("❌ Clock/day keying: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/day keying: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkData(ctx *Context) error {
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	commitments, err := ctx.Store.ListCommitments(true)
	if err != nil {
		return fmt.Errorf("failed to list commitments: %w", err)
	}

	ids := make(map[string]bool, len(commitments))
	for _, c := range commitments {
		if ids[c.ID] {
			return fmt.Errorf("duplicate commitment ID found: %s", c.ID)
		}
		ids[c.ID] = true
		if c.Title == "" {
			return fmt.Errorf("commitment %s has an empty title", c.ID)
		}
	}

	// Every day must carry at most one check-in per commitment.
	today := daykey.Key(ctx.Now())
	checkins, err := ctx.Store.CheckinsForDay(today)
	if err != nil {
		return fmt.Errorf("failed to query today's check-ins: %w", err)
	}
	seen := make(map[string]bool, len(checkins))
	for _, ci := range checkins {
		if seen[ci.CommitmentID] {
			return fmt.Errorf("duplicate check-in for commitment %s on %s", ci.CommitmentID, today)
		}
		seen[ci.CommitmentID] = true
	}

	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.StorePath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'yakusoku backup create'")
	}
	return nil
}

// otherInstancePids returns the pids of other running yakusoku
// processes. The tray app matches the name prefix but never writes the
// store, so it is excluded.
func otherInstancePids() ([]int, error) {
	procs, err := listProcessesFunc()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	self := os.Getpid()
	var pids []int
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		exe := p.Executable()
		if strings.HasPrefix(exe, constants.TrayAppIdentifier) {
			continue
		}
		if strings.HasPrefix(exe, constants.AppName) {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}

func checkClock(ctx *Context) error {
	now := ctx.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	// The pinned zone must resolve and produce a parseable key.
	key := daykey.Key(now)
	if _, err := daykey.Parse(key); err != nil {
		return fmt.Errorf("day keying is broken: %w", err)
	}
	return nil
}
