// Package theme defines the color palettes the TUI renders with. Palette
// names match the values persisted in settings; an unknown name falls
// back to the default so an old database never breaks rendering.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/yakusoku/internal/constants"
	"github.com/julianstephens/yakusoku/internal/models"
)

type Theme struct {
	Name     string
	Ink      lipgloss.Color
	MutedInk lipgloss.Color
	Paper    lipgloss.Color
	Line     lipgloss.Color
	Accent   lipgloss.Color

	Good lipgloss.Color
	Meh  lipgloss.Color
	Poor lipgloss.Color
}

var themes = map[string]Theme{
	"creamGreen": {
		Name:     "creamGreen",
		Ink:      lipgloss.Color("#2E3D2F"),
		MutedInk: lipgloss.Color("#6B7D6C"),
		Paper:    lipgloss.Color("#FAF6EC"),
		Line:     lipgloss.Color("#D8D2C0"),
		Accent:   lipgloss.Color("#5E8C61"),
		Good:     lipgloss.Color("#5E8C61"),
		Meh:      lipgloss.Color("#D9A441"),
		Poor:     lipgloss.Color("#C26B5A"),
	},
	"minimal": {
		Name:     "minimal",
		Ink:      lipgloss.Color("#1A1A1A"),
		MutedInk: lipgloss.Color("#8A8A8A"),
		Paper:    lipgloss.Color("#FFFFFF"),
		Line:     lipgloss.Color("#E0E0E0"),
		Accent:   lipgloss.Color("#1A1A1A"),
		Good:     lipgloss.Color("#2F6F4F"),
		Meh:      lipgloss.Color("#9A8A4A"),
		Poor:     lipgloss.Color("#8A4A42"),
	},
	"retro": {
		Name:     "retro",
		Ink:      lipgloss.Color("#3B2F2F"),
		MutedInk: lipgloss.Color("#8C7B6B"),
		Paper:    lipgloss.Color("#F4E8D0"),
		Line:     lipgloss.Color("#C9B697"),
		Accent:   lipgloss.Color("#B5543B"),
		Good:     lipgloss.Color("#6E8B3D"),
		Meh:      lipgloss.Color("#D98E32"),
		Poor:     lipgloss.Color("#B5543B"),
	},
	"zen": {
		Name:     "zen",
		Ink:      lipgloss.Color("#37414B"),
		MutedInk: lipgloss.Color("#7C8894"),
		Paper:    lipgloss.Color("#F2F4F6"),
		Line:     lipgloss.Color("#D4DAE0"),
		Accent:   lipgloss.Color("#5B7C99"),
		Good:     lipgloss.Color("#5B8C7A"),
		Meh:      lipgloss.Color("#B0A160"),
		Poor:     lipgloss.Color("#A06A6A"),
	},
	"washi": {
		Name:     "washi",
		Ink:      lipgloss.Color("#3F3A35"),
		MutedInk: lipgloss.Color("#8F867C"),
		Paper:    lipgloss.Color("#F7F2E9"),
		Line:     lipgloss.Color("#DAD0C0"),
		Accent:   lipgloss.Color("#9A6B4F"),
		Good:     lipgloss.Color("#70835C"),
		Meh:      lipgloss.Color("#C2974E"),
		Poor:     lipgloss.Color("#A85F52"),
	},
}

// Names lists the available palette names.
func Names() []string {
	return []string{"creamGreen", "minimal", "retro", "zen", "washi"}
}

// Exists reports whether name is a known palette.
func Exists(name string) bool {
	_, ok := themes[name]
	return ok
}

// ByName returns the palette for name, falling back to the default.
func ByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[constants.DefaultTheme]
}

// RatingColor maps a rating onto the palette.
func (t Theme) RatingColor(r models.Rating) lipgloss.Color {
	switch r {
	case models.RatingGood:
		return t.Good
	case models.RatingMeh:
		return t.Meh
	default:
		return t.Poor
	}
}

// Title renders header text.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Ink).Bold(true)
}

// Muted renders secondary text.
func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.MutedInk)
}

// Card renders a bordered content block.
func (t Theme) Card() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Line).
		Padding(0, 1)
}

// ActiveTab and InactiveTab render the tab bar.
func (t Theme) ActiveTab() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Padding(0, 1).Bold(true)
}

func (t Theme) InactiveTab() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.MutedInk).Padding(0, 1)
}

// Dot renders a single day marker in the history strip. A nil rating is
// an unrecorded day.
func (t Theme) Dot(r *models.Rating) string {
	if r == nil {
		return lipgloss.NewStyle().Foreground(t.Line).Render("·")
	}
	return lipgloss.NewStyle().Foreground(t.RatingColor(*r)).Render("●")
}
