// Package tui hosts the dashboard application: a date-scoped list of
// due achievements with completion toggling, a template gallery, and a
// statistics footer. All domain logic lives in the core packages; the
// dashboard only calls them and persists after each mutation.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/config"
	"github.com/ashvell/attain/internal/models"
	"github.com/ashvell/attain/internal/state"
	"github.com/ashvell/attain/internal/storage"
)

type mode int

const (
	modeDashboard mode = iota
	modeTemplates
	modeAdd
)

type DashboardModel struct {
	st    *state.State
	store storage.Store
	cal   calendar.Calendar
	clock calendar.Clock
	theme Theme

	templates []models.Template
	reportDir string

	selectedDate time.Time
	due          []models.Achievement
	cursor       int

	mode           mode
	templateCursor int
	titleInput     textinput.Model

	status string
	width  int
	height int
}

// NewDashboard builds the dashboard over an already loaded state.
func NewDashboard(st *state.State, store storage.Store, cal calendar.Calendar, clock calendar.Clock, themeName, reportDir string) DashboardModel {
	input := textinput.New()
	input.Placeholder = "Achievement title"
	input.CharLimit = 80

	m := DashboardModel{
		st:           st,
		store:        store,
		cal:          cal,
		clock:        clock,
		theme:        ThemeByName(themeName),
		templates:    models.StarterTemplates(),
		reportDir:    reportDir,
		selectedDate: cal.StartOfDay(clock.Now()),
		titleInput:   input,
	}
	m.refresh()
	return m
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// refresh recomputes the due list for the selected date and clamps the
// cursor into it.
func (m *DashboardModel) refresh() {
	m.due = m.st.Due(m.selectedDate, m.cal)
	if m.cursor >= len(m.due) {
		m.cursor = len(m.due) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// statsRange is the trailing window the footer reports on, ending at
// the selected date.
func (m *DashboardModel) statsRange() models.Range {
	end := m.cal.StartOfDay(m.selectedDate)
	return models.Range{
		Start: m.cal.AddDays(end, -config.StatsWindowDays),
		End:   end,
	}
}

func (m *DashboardModel) stats() models.Statistics {
	return m.st.Statistics(m.statsRange(), m.cal, m.clock.Now())
}
