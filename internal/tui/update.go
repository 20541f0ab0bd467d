package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashvell/attain/internal/models"
	"github.com/ashvell/attain/internal/report"
	"github.com/ashvell/attain/internal/schedule"
	"github.com/ashvell/attain/internal/util"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeTemplates:
			return m.updateTemplates(msg)
		default:
			return m.updateDashboard(msg)
		}
	}
	return m, nil
}

func (m DashboardModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.selectedDate = m.cal.AddDays(m.selectedDate, -1)
		m.refresh()
	case "right", "l":
		m.selectedDate = m.cal.AddDays(m.selectedDate, 1)
		m.refresh()
	case "t":
		m.selectedDate = m.cal.StartOfDay(m.clock.Now())
		m.refresh()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.due)-1 {
			m.cursor++
		}
	case " ", "enter":
		if a, ok := m.selected(); ok {
			m.st.ToggleCompletion(a.ID, m.selectedDate, m.cal)
			m.persist()
			m.refresh()
		}
	case "x":
		if a, ok := m.selected(); ok {
			a.Archived = !a.Archived
			m.st.Update(a)
			m.persist()
			m.refresh()
			m.status = fmt.Sprintf("Archived %q", a.Title)
		}
	case "d":
		if a, ok := m.selected(); ok {
			m.st.Remove(a.ID)
			m.persist()
			m.refresh()
			m.status = fmt.Sprintf("Removed %q and its history", a.Title)
		}
	case "a":
		m.mode = modeAdd
		m.titleInput.SetValue("")
		m.titleInput.Focus()
		return m, nil
	case "g":
		m.mode = modeTemplates
		m.templateCursor = 0
	case "r":
		m.writeReport()
	}
	return m, nil
}

func (m DashboardModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeDashboard
		m.titleInput.Blur()
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.titleInput.Value())
		if title != "" {
			a := models.NewAchievement(title, "", models.SystemIcon("star"), schedule.Daily{})
			m.st.Add(a)
			m.persist()
			m.refresh()
			m.status = fmt.Sprintf("Added %q", title)
		}
		m.mode = modeDashboard
		m.titleInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) updateTemplates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeDashboard
	case "up", "k":
		if m.templateCursor > 0 {
			m.templateCursor--
		}
	case "down", "j":
		if m.templateCursor < len(m.templates)-1 {
			m.templateCursor++
		}
	case "enter", " ":
		if m.templateCursor < len(m.templates) {
			a := m.templates[m.templateCursor].Instantiate()
			m.st.Add(a)
			m.persist()
			m.refresh()
			m.status = fmt.Sprintf("Added %q", a.Title)
		}
		m.mode = modeDashboard
	}
	return m, nil
}

func (m *DashboardModel) selected() (models.Achievement, bool) {
	if m.cursor < 0 || m.cursor >= len(m.due) {
		return models.Achievement{}, false
	}
	return m.due[m.cursor], true
}

func (m *DashboardModel) persist() {
	if m.store == nil {
		return
	}
	util.LogError("persist state", m.store.Save(m.st))
}

func (m *DashboardModel) writeReport() {
	rng := m.statsRange()
	path := filepath.Join(m.reportDir, fmt.Sprintf("report_%s.pdf", rng.End.Format("2006-01-02")))
	if err := report.Generate(m.stats(), rng, path); err != nil {
		m.status = fmt.Sprintf("Report failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Report written: %s", path)
}
