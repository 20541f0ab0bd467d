package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Item      lipgloss.Style
	Completed lipgloss.Style
	Focused   lipgloss.Style
	Category  lipgloss.Style
	Points    lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Input     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Category:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Points:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
	},
	"mono": {
		Name:      "Mono",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Bold(true),
		Item:      lipgloss.NewStyle(),
		Completed: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Focused:   lipgloss.NewStyle().Reverse(true),
		Category:  lipgloss.NewStyle().Faint(true),
		Points:    lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Underline(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(50),
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return Themes["default"]
}
