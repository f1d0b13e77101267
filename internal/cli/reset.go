package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Force bool `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title("Delete ALL commitments, check-ins, and settings?").
			Description("This cannot be undone. Consider 'yakusoku backup create' first.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	if err := ctx.Ledger.ResetAll(); err != nil {
		return fmt.Errorf("reset failed, data unchanged: %w", err)
	}
	fmt.Println("All data deleted. Run 'yakusoku init' to start fresh.")
	return nil
}
