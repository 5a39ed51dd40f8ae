package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the color palette for the preview.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
	Error:     lipgloss.Color("#D63031"), // Red

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles contains the lipgloss styles for the preview.
type Styles struct {
	App         lipgloss.Style
	Header      lipgloss.Style
	HeaderCount lipgloss.Style
	Footer      lipgloss.Style
	Empty       lipgloss.Style

	DetailBox   lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style

	Table table.Styles
}

// DefaultStyles returns the default preview styles.
func DefaultStyles() Styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Colors.Muted).
		BorderBottom(true).
		Bold(true).
		Foreground(Colors.Secondary)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(Colors.TitleSelected).
		Bold(true)

	return Styles{
		App: lipgloss.NewStyle().Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		HeaderCount: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
		Empty: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Italic(true),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		DetailLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary).
			Width(16),
		DetailValue: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		Table: tableStyles,
	}
}

// SuccessStyle renders confirmation lines on the command line.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Colors.Success).Bold(true)
}

// WarningStyle renders warning lines on the command line.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Colors.Warning)
}
