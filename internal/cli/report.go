package cli

import (
	"fmt"

	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/stats"
)

type ReportCmd struct {
	Week int `short:"w" help:"Weeks back from today (0 = the current week)." default:"0"`
}

func (c *ReportCmd) Validate() error {
	if c.Week < 0 {
		return fmt.Errorf("week offset cannot be negative")
	}
	return nil
}

func (c *ReportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Now()
	th := currentTheme(ctx)

	summary, err := ctx.Ledger.Summary(7, c.Week, now)
	if err != nil {
		return err
	}

	reference := daykey.DaysAgo(now, c.Week*7)
	start := daykey.Key(daykey.DaysAgo(reference, 6))
	end := daykey.Key(reference)

	fmt.Println(th.Title().Render(fmt.Sprintf("Weekly report  %s … %s", start, end)))
	fmt.Println()
	fmt.Printf("  Score           %d / 100\n", summary.Score)
	fmt.Printf("  Check-ins       %d (good %d · meh %d · poor %d)\n",
		summary.TotalCheckins, summary.GoodCount, summary.MehCount, summary.PoorCount)
	fmt.Printf("  Success rate    %.0f%%\n", summary.SuccessRate*100)
	fmt.Printf("  Completion      %.0f%%\n", summary.CompletionRate*100)
	fmt.Println()
	fmt.Println("  " + th.Muted().Render(stats.InsightMessage(stats.Insight(summary))))
	return nil
}
