package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the preview.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(Colors.Error).Render("Error: " + m.err.Error()))
	case m.loading:
		b.WriteString(m.styles.Empty.Render("Loading initiatives..."))
	case len(m.rows) == 0:
		b.WriteString(m.styles.Empty.Render("No initiatives found"))
	case m.showDetail:
		b.WriteString(m.viewDetail())
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))
	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	title := m.styles.Header.Render(m.title)
	count := m.styles.HeaderCount.Render(fmt.Sprintf("%d initiatives · %s layout", len(m.rows), m.layout.Name))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", count)
}

func (m *Model) viewDetail() string {
	row := m.SelectedRow()
	lines := make([]string, 0, len(m.layout.Columns))
	valueWidth := m.width - 24
	if valueWidth < 20 {
		valueWidth = 60
	}
	for _, c := range m.layout.Columns {
		label := m.styles.DetailLabel.Render(string(c))
		value := m.styles.DetailValue.Width(valueWidth).Render(row[c])
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, value))
	}
	return m.styles.DetailBox.Render(strings.Join(lines, "\n"))
}
