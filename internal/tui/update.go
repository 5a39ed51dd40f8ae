package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgRowsLoaded:
		m.loading = false
		m.setRows(msg.Rows)
		return m, nil

	case MsgError:
		m.loading = false
		if !errors.Is(msg.Err, context.Canceled) {
			m.err = msg.Err
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if m.showDetail {
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Detail) {
			m.showDetail = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		return m.quit()
	case key.Matches(msg, m.keys.Detail):
		if m.SelectedRow() != nil {
			m.showDetail = true
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.table.MoveUp(m.table.Height())
	case key.Matches(msg, m.keys.NextPage):
		m.table.MoveDown(m.table.Height())
	case key.Matches(msg, m.keys.Top):
		m.table.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.table.GotoBottom()
	}
	return m, nil
}

// quit cancels any pending fetch and stops the program.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}
