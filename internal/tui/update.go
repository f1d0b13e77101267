package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/theme"
	"github.com/julianstephens/yakusoku/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		// The form and the confirm dialog own the keyboard while open.
		switch m.state {
		case StateAddCommitment:
			return m.updateForm(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
		return m.updateKeys(msg)
	}

	if m.state == StateAddCommitment && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.state = m.nextTab(1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = m.nextTab(-1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		return m, nil
	}

	switch m.state {
	case StateHome:
		return m.updateHome(msg)
	case StateSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m Model) nextTab(dir int) SessionState {
	tabs := []SessionState{StateHome, StateReport, StateSettings}
	for i, t := range tabs {
		if t == m.state {
			return tabs[(i+dir+len(tabs))%len(tabs)]
		}
	}
	return StateHome
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.commitments)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Poor):
		m.toggle(models.RatingPoor)
	case key.Matches(msg, m.keys.Meh):
		m.toggle(models.RatingMeh)
	case key.Matches(msg, m.keys.Good):
		m.toggle(models.RatingGood)

	case key.Matches(msg, m.keys.Add):
		m.state = StateAddCommitment
		m.form = m.newCommitmentForm()
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Archive):
		if c := m.selected(); c != nil {
			if err := m.store.ArchiveCommitment(c.ID); err != nil {
				m.errMsg = err.Error()
			} else {
				m.reload()
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if c := m.selected(); c != nil {
			target := *c
			m.deleteTarget = &target
			m.state = StateConfirmDelete
		}
	}
	return m, nil
}

// toggle applies the tap semantics: the rating already recorded for
// today clears, anything else overwrites.
func (m *Model) toggle(r models.Rating) {
	c := m.selected()
	if c == nil {
		return
	}
	if _, err := m.ledger.Toggle(c.ID, r, m.now()); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.reload()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.state = StateHome
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = StateHome
		if err := m.addCommitment(); err != nil {
			m.errMsg = err.Error()
		} else {
			m.reload()
		}
		m.form = nil
	case huh.StateAborted:
		m.state = StateHome
		m.form = nil
	}
	return m, cmd
}

func (m *Model) addCommitment() error {
	title, err := validation.Title(m.formData.Title)
	if err != nil {
		return err
	}
	return m.store.AddCommitment(models.Commitment{
		ID:        uuid.NewString(),
		Title:     title,
		Pros:      validation.OptionalText(m.formData.Pros),
		Cons:      validation.OptionalText(m.formData.Cons),
		IfThen:    validation.OptionalText(m.formData.IfThen),
		CreatedAt: m.now(),
	})
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.deleteTarget != nil {
			if err := m.ledger.DeleteCommitment(m.deleteTarget.ID); err != nil {
				m.errMsg = err.Error()
			} else {
				m.reload()
			}
		}
		m.deleteTarget = nil
		m.state = StateHome
	case "n", "N", "esc":
		m.deleteTarget = nil
		m.state = StateHome
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "t":
		// Cycle through the palettes and persist the choice.
		names := theme.Names()
		next := names[0]
		for i, name := range names {
			if name == m.settings.PreferredTheme {
				next = names[(i+1)%len(names)]
				break
			}
		}
		m.settings.PreferredTheme = next
		m.th = theme.ByName(next)
		if err := m.store.SaveSettings(m.settings); err != nil {
			m.errMsg = err.Error()
		}

	case "n":
		m.settings.EnableNotifications = !m.settings.EnableNotifications
		if err := m.store.SaveSettings(m.settings); err != nil {
			m.errMsg = err.Error()
		}

	case "+":
		m.settings.ReminderHour = (m.settings.ReminderHour + 1) % 24
		if err := m.store.SaveSettings(m.settings); err != nil {
			m.errMsg = err.Error()
		}

	case "-":
		m.settings.ReminderHour = (m.settings.ReminderHour + 23) % 24
		if err := m.store.SaveSettings(m.settings); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m, nil
}
