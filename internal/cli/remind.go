package cli

import (
	"fmt"

	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/notifier"
)

// RemindCmd sends a reminder through the tray notifier when commitments
// are still unrated today. Intended to be run from a scheduler (cron,
// launchd) at or after the configured reminder hour.
type RemindCmd struct {
	DryRun bool `help:"Print what would be sent instead of notifying."`
}

func (c *RemindCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.EnableNotifications {
		fmt.Println("Notifications are disabled.")
		return nil
	}

	now := ctx.Now()
	commitments, err := ctx.Store.ListCommitments(false)
	if err != nil {
		return err
	}
	ratings, err := ctx.Ledger.TodayRatings(now)
	if err != nil {
		return err
	}

	unrated := 0
	for _, cm := range commitments {
		if _, ok := ratings[cm.ID]; !ok {
			unrated++
		}
	}
	if unrated == 0 {
		fmt.Println("All commitments checked in for today.")
		return nil
	}

	text := fmt.Sprintf("How did today go? %d commitment(s) waiting for a check-in.", unrated)
	if c.DryRun {
		next := daykey.NextReminder(now, settings.ReminderHour)
		fmt.Printf("Would notify: %q (next scheduled reminder: %s)\n",
			text, next.Format("2006-01-02 15:04 MST"))
		return nil
	}

	if err := notifier.New().Notify(text); err != nil {
		return fmt.Errorf("failed to deliver reminder: %w", err)
	}
	fmt.Println("Reminder sent.")
	return nil
}
