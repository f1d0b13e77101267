package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/yakusoku/internal/ledger"
	"github.com/julianstephens/yakusoku/internal/models"
	"github.com/julianstephens/yakusoku/internal/stats"
	"github.com/julianstephens/yakusoku/internal/storage"
	"github.com/julianstephens/yakusoku/internal/theme"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateReport
	StateSettings
	StateAddCommitment
	StateConfirmDelete
)

// CommitmentForm backs the huh add-commitment form.
type CommitmentForm struct {
	Title  string
	Pros   string
	Cons   string
	IfThen string
}

type Model struct {
	store  storage.Provider
	ledger *ledger.Ledger
	now    func() time.Time

	state    SessionState
	keys     KeyMap
	help     help.Model
	th       theme.Theme
	settings models.Settings

	commitments []models.Commitment
	ratings     map[string]models.Rating
	dots        map[string][]*models.Rating
	summary     stats.WeeklySummary
	cursor      int

	form         *huh.Form
	formData     *CommitmentForm
	deleteTarget *models.Commitment

	errMsg   string
	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider, lg *ledger.Ledger, now func() time.Time) Model {
	m := Model{
		store:  store,
		ledger: lg,
		now:    now,
		state:  StateHome,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}

	settings, err := store.GetSettings()
	if err == nil {
		m.settings = settings
	}
	m.th = theme.ByName(m.settings.PreferredTheme)

	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// reload refreshes every view's data from the store. Cheap at
// single-user volumes; called after every write.
func (m *Model) reload() {
	now := m.now()

	commitments, err := m.store.ListCommitments(false)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.commitments = commitments
	if m.cursor >= len(commitments) {
		m.cursor = len(commitments) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	ratings, err := m.ledger.TodayRatings(now)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.ratings = ratings

	m.dots = make(map[string][]*models.Rating, len(commitments))
	for _, c := range commitments {
		dots, err := m.ledger.WindowDots(c.ID, 7, now)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		m.dots[c.ID] = dots
	}

	summary, err := m.ledger.Summary(7, 0, now)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.summary = summary
	m.errMsg = ""
}

func (m *Model) newCommitmentForm() *huh.Form {
	m.formData = &CommitmentForm{}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Commitment").
				Description("What are you promising yourself?").
				Value(&m.formData.Title),
			huh.NewText().
				Title("Pros").
				Description("Why does keeping it matter? (optional)").
				Value(&m.formData.Pros),
			huh.NewText().
				Title("Cons").
				Description("What does breaking it cost? (optional)").
				Value(&m.formData.Cons),
			huh.NewInput().
				Title("If-then strategy").
				Description("Tie the commitment to a trigger (optional)").
				Value(&m.formData.IfThen),
		),
	)
}

func (m Model) selected() *models.Commitment {
	if len(m.commitments) == 0 || m.cursor < 0 || m.cursor >= len(m.commitments) {
		return nil
	}
	return &m.commitments[m.cursor]
}
