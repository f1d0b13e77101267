package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/yakusoku/internal/daykey"
)

type LogCmd struct {
	Commitment string `arg:"" optional:"" help:"Show one commitment's recent check-ins (ID or exact title)."`
	Days       int    `short:"d" help:"Window length in days (7 or 14)." default:"7"`
}

func (c *LogCmd) Validate() error {
	if c.Days != 7 && c.Days != 14 {
		return fmt.Errorf("log window must be 7 or 14 days")
	}
	return nil
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Now()
	if c.Commitment != "" {
		return c.runDetail(ctx, now)
	}
	th := currentTheme(ctx)

	commitments, err := ctx.Store.ListCommitments(false)
	if err != nil {
		return err
	}
	if len(commitments) == 0 {
		fmt.Println("No commitments yet. Add one with 'yakusoku add'.")
		return nil
	}

	start := daykey.Key(daykey.DaysAgo(now, c.Days-1))
	end := daykey.Key(now)
	fmt.Println(th.Title().Render(fmt.Sprintf("%s … %s", start, end)))

	for _, cm := range commitments {
		dots, err := ctx.Ledger.WindowDots(cm.ID, c.Days, now)
		if err != nil {
			return err
		}
		fmt.Printf("%-30s %s\n", cm.Title, renderDots(th, dots))
	}
	fmt.Println()
	fmt.Println(th.Muted().Render("oldest → today"))
	return nil
}

// runDetail lists one commitment's check-ins in the window, newest
// first, with notes.
func (c *LogCmd) runDetail(ctx *Context, now time.Time) error {
	th := currentTheme(ctx)

	cm, err := resolveCommitment(ctx, c.Commitment)
	if err != nil {
		return err
	}

	// Widen the wall-clock filter to the start of the oldest day so a
	// check-in recorded early that morning is still included.
	since, err := daykey.Parse(daykey.Key(daykey.DaysAgo(now, c.Days-1)))
	if err != nil {
		return err
	}
	checkins, err := ctx.Ledger.Recent(cm.ID, since)
	if err != nil {
		return err
	}

	fmt.Println(th.Title().Render(cm.Title))
	if len(checkins) == 0 {
		fmt.Println("No check-ins in this window.")
		return nil
	}
	for _, ci := range checkins {
		line := fmt.Sprintf("%s  %s %s", ci.DayKey, th.Dot(&ci.Rating), ci.Rating)
		if ci.Note != "" {
			line += "  " + th.Muted().Render(ci.Note)
		}
		fmt.Println(line)
	}
	return nil
}
