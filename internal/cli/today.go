package cli

import (
	"fmt"

	"github.com/julianstephens/yakusoku/internal/daykey"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Now()
	th := currentTheme(ctx)

	commitments, err := ctx.Store.ListCommitments(false)
	if err != nil {
		return err
	}
	if len(commitments) == 0 {
		fmt.Println("No commitments yet. Add one with 'yakusoku add'.")
		return nil
	}

	ratings, err := ctx.Ledger.TodayRatings(now)
	if err != nil {
		return err
	}

	fmt.Println(th.Title().Render(daykey.Key(now)))
	for _, cm := range commitments {
		status := th.Muted().Render("—")
		if r, ok := ratings[cm.ID]; ok {
			status = th.Dot(&r) + " " + r.String()
		}

		dots, err := ctx.Ledger.WindowDots(cm.ID, 7, now)
		if err != nil {
			return err
		}
		fmt.Printf("%-30s %-12s %s\n", cm.Title, status, renderDots(th, dots))
	}
	return nil
}
