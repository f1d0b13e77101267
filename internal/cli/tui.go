package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/yakusoku/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Ledger, ctx.Now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
