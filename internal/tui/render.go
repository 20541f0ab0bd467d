package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/ashvell/attain/internal/config"
)

func (m DashboardModel) View() string {
	switch m.mode {
	case modeAdd:
		return m.theme.Base.Render(m.viewAdd())
	case modeTemplates:
		return m.theme.Base.Render(m.viewTemplates())
	default:
		return m.theme.Base.Render(m.viewDashboard())
	}
}

func (m DashboardModel) viewDashboard() string {
	var b strings.Builder

	b.WriteString(m.theme.Header.Render(fmt.Sprintf("Attain - %s", m.formatDate(m.selectedDate))))
	b.WriteString("\n\n")

	if len(m.due) == 0 {
		b.WriteString(m.theme.Dim.Render("Nothing due on this day."))
		b.WriteString("\n")
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	for i, a := range m.due {
		done := m.st.IsCompleted(a.ID, m.selectedDate, m.cal)
		line := fmt.Sprintf("%s %s", checkbox(done), a.Title)
		line = ansi.Truncate(line, width-24, "...")
		if done {
			line = m.theme.Completed.Render(line)
		}
		row := fmt.Sprintf("%s  %s  %s",
			line,
			m.theme.Points.Render(fmt.Sprintf("%dpt", a.Points)),
			m.theme.Category.Render(a.Category),
		)
		if i == m.cursor {
			b.WriteString(m.theme.Focused.Render("> " + row))
		} else {
			b.WriteString(m.theme.Item.Render("  " + row))
		}
		b.WriteString("\n")
	}

	if a, ok := m.selected(); ok {
		upcoming := m.st.UpcomingOccurrences(a.ID, m.selectedDate, config.UpcomingLimit, m.cal)
		if len(upcoming) > 0 {
			b.WriteString("\n")
			b.WriteString(m.theme.Highlight.Render("Upcoming: "))
			days := make([]string, 0, len(upcoming))
			for _, day := range upcoming {
				days = append(days, day.Format("Jan 2"))
			}
			b.WriteString(m.theme.Dim.Render(strings.Join(days, ", ")))
			b.WriteString("\n")
		}
	}

	stats := m.stats()
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf(
		"Streak %d (best %d)  |  %d points  |  %.0f%% over %d days",
		stats.CurrentStreak, stats.BestStreak, stats.TotalPoints,
		stats.CompletionRate*100, config.StatsWindowDays,
	)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.theme.Highlight.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Dim.Render("space toggle | a add | g gallery | x archive | d delete | h/l day | t today | r report | q quit"))
	return b.String()
}

func (m DashboardModel) viewAdd() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("New Daily Achievement"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Input.Render(m.titleInput.View()))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Dim.Render("enter save | esc cancel"))
	return b.String()
}

func (m DashboardModel) viewTemplates() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Template Gallery"))
	b.WriteString("\n\n")
	for i, t := range m.templates {
		row := fmt.Sprintf("%s (%dpt, %s)", t.Title, t.Points, t.Category)
		if i == m.templateCursor {
			b.WriteString(m.theme.Focused.Render("> " + row))
		} else {
			b.WriteString(m.theme.Item.Render("  " + row))
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Dim.Render("    " + t.Detail))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render("enter add | esc back"))
	return b.String()
}

func (m DashboardModel) formatDate(t time.Time) string {
	label := t.Format("Mon, Jan 2 2006")
	if calendarSame := m.cal.StartOfDay(m.clock.Now()).Equal(m.cal.StartOfDay(t)); calendarSame {
		label += " (today)"
	}
	return label
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
