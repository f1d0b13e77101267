package cli

import (
	"fmt"

	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/models"
)

type CheckinCmd struct {
	Commitment string `arg:"" help:"Commitment ID or title."`
	Rating     string `arg:"" help:"Rating: poor|meh|good."`
	Set        bool   `help:"Always record the rating instead of toggling it off when it is already set."`
	Day        string `help:"Day to record (YYYY-MM-DD). Defaults to today; implies --set."`
	Note       string `short:"n" help:"Optional note for the day."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	commitment, err := resolveCommitment(ctx, c.Commitment)
	if err != nil {
		return err
	}
	rating, err := models.ParseRating(c.Rating)
	if err != nil {
		return err
	}

	now := ctx.Now()

	// Backfilling a past day always overwrites; toggle semantics only
	// make sense for today's tap-again-to-clear interaction.
	if c.Day != "" {
		if _, err := daykey.Parse(c.Day); err != nil {
			return err
		}
		if _, err := ctx.Ledger.Set(commitment.ID, c.Day, rating, c.Note, now); err != nil {
			return err
		}
		fmt.Printf("Recorded %s for %s on %s\n", rating, commitment.Title, c.Day)
		return nil
	}

	if c.Set {
		if _, err := ctx.Ledger.SetToday(commitment.ID, rating, c.Note, now); err != nil {
			return err
		}
		fmt.Printf("Recorded %s for %s\n", rating, commitment.Title)
		return nil
	}

	recorded, err := ctx.Ledger.Toggle(commitment.ID, rating, now)
	if err != nil {
		return err
	}
	if recorded == nil {
		fmt.Printf("Cleared today's rating for %s\n", commitment.Title)
	} else {
		fmt.Printf("Recorded %s for %s\n", recorded.Rating, commitment.Title)
	}
	return nil
}

type UncheckCmd struct {
	Commitment string `arg:"" help:"Commitment ID or title."`
	Day        string `help:"Day to clear (YYYY-MM-DD). Defaults to today."`
}

func (c *UncheckCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	commitment, err := resolveCommitment(ctx, c.Commitment)
	if err != nil {
		return err
	}

	day := c.Day
	if day == "" {
		day = daykey.Key(ctx.Now())
	} else if _, err := daykey.Parse(day); err != nil {
		return err
	}

	if err := ctx.Ledger.Clear(commitment.ID, day); err != nil {
		return err
	}
	fmt.Printf("Cleared %s on %s\n", commitment.Title, day)
	return nil
}
