package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/yakusoku/internal/ledger"
	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/storage"
	"github.com/julianstephens/yakusoku/internal/theme"
)

type Context struct {
	Store  storage.Provider
	Ledger *ledger.Ledger
	// Now is injected so tests can pin the clock.
	Now func() time.Time
}

// resolveCommitment accepts a commitment id or an exact title.
func resolveCommitment(ctx *Context, ref string) (models.Commitment, error) {
	c, err := ctx.Store.GetCommitment(ref)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Commitment{}, err
	}

	c, err = ctx.Store.GetCommitmentByTitle(ref)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Commitment{}, fmt.Errorf("no commitment matching %q", ref)
		}
		return models.Commitment{}, err
	}
	return c, nil
}

// currentTheme loads the persisted palette, falling back to the default
// when settings are unreadable.
func currentTheme(ctx *Context) theme.Theme {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return theme.ByName("")
	}
	return theme.ByName(settings.PreferredTheme)
}

// renderDots renders a history strip, oldest day first.
func renderDots(th theme.Theme, dots []*models.Rating) string {
	var b strings.Builder
	for i, d := range dots {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(th.Dot(d))
	}
	return b.String()
}
