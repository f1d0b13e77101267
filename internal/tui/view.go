package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/yakusoku/internal/daykey"
	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case StateHome, StateConfirmDelete:
		b.WriteString(m.renderHome())
		if m.state == StateConfirmDelete && m.deleteTarget != nil {
			b.WriteString("\n")
			b.WriteString(m.th.Card().Render(fmt.Sprintf(
				"Delete %q and its history? (y/n)", m.deleteTarget.Title)))
		}
	case StateReport:
		b.WriteString(m.renderReport())
	case StateSettings:
		b.WriteString(m.renderSettings())
	case StateAddCommitment:
		if m.form != nil {
			b.WriteString(m.form.View())
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(m.th.Muted().Render("error: " + m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTabs() string {
	type tab struct {
		state SessionState
		label string
	}
	tabs := []tab{
		{StateHome, "Home"},
		{StateReport, "Report"},
		{StateSettings, "Settings"},
	}

	active := m.state
	if active == StateConfirmDelete || active == StateAddCommitment {
		active = StateHome
	}

	var rendered []string
	for _, t := range tabs {
		if t.state == active {
			rendered = append(rendered, m.th.ActiveTab().Render(t.label))
		} else {
			rendered = append(rendered, m.th.InactiveTab().Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderHome() string {
	if len(m.commitments) == 0 {
		return m.th.Muted().Render("No commitments yet. Press 'a' to add one.")
	}

	var b strings.Builder
	b.WriteString(m.th.Title().Render(daykey.Key(m.now())))
	b.WriteString("\n\n")

	for i, c := range m.commitments {
		cursor := "  "
		if i == m.cursor {
			cursor = m.th.Title().Render("> ")
		}

		status := m.th.Muted().Render("—")
		if r, ok := m.ratings[c.ID]; ok {
			status = m.th.Dot(&r) + " " + r.String()
		}

		b.WriteString(fmt.Sprintf("%s%-28s %-12s %s\n",
			cursor, truncate(c.Title, 28), status, m.renderDots(m.dots[c.ID])))

		if i == m.cursor && c.IfThen != nil {
			b.WriteString("  " + m.th.Muted().Render(*c.IfThen) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.th.Muted().Render("1 poor · 2 meh · 3 good (press again to clear)"))
	return b.String()
}

func (m Model) renderDots(dots []*models.Rating) string {
	var b strings.Builder
	for i, d := range dots {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.th.Dot(d))
	}
	return b.String()
}

func (m Model) renderReport() string {
	s := m.summary

	var b strings.Builder
	b.WriteString(m.th.Title().Render("This week"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Score           %d / 100\n", s.Score))
	b.WriteString(fmt.Sprintf("  Check-ins       %d (good %d · meh %d · poor %d)\n",
		s.TotalCheckins, s.GoodCount, s.MehCount, s.PoorCount))
	b.WriteString(fmt.Sprintf("  Success rate    %.0f%%\n", s.SuccessRate*100))
	b.WriteString(fmt.Sprintf("  Completion      %.0f%%\n", s.CompletionRate*100))
	b.WriteString("\n")
	b.WriteString("  " + m.th.Muted().Render(stats.InsightMessage(stats.Insight(s))))
	return b.String()
}

func (m Model) renderSettings() string {
	var b strings.Builder
	b.WriteString(m.th.Title().Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Theme           %s\n", m.settings.PreferredTheme))
	b.WriteString(fmt.Sprintf("  Reminder hour   %d:00\n", m.settings.ReminderHour))
	b.WriteString(fmt.Sprintf("  Notifications   %t\n", m.settings.EnableNotifications))
	b.WriteString(fmt.Sprintf("  Cloud sync      %t\n", m.settings.UseCloudSync))
	b.WriteString("\n")
	b.WriteString(m.th.Muted().Render("t cycle theme · n toggle notifications · +/- reminder hour"))
	return b.String()
}

// truncate shortens a title to n runes. Titles are frequently CJK, so
// byte slicing would cut multi-byte runes in half.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
