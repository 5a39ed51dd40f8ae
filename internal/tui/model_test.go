package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/namastexlabs/automagik-roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []domain.Row {
	return []domain.Row{
		{domain.ColumnProject: "GENIE", domain.ColumnInitiative: "Wish engine", domain.ColumnStage: "Planned", domain.ColumnETA: "Q4 2025"},
		{domain.ColumnProject: "OMNI", domain.ColumnInitiative: "Channel routing", domain.ColumnStage: "Alpha", domain.ColumnETA: "Q1 2026"},
	}
}

func newLoadedModel(t *testing.T, rows []domain.Row) *Model {
	t.Helper()
	layout, err := domain.ParseLayout(domain.LayoutStakeholder)
	require.NoError(t, err)

	m := New(func(context.Context) ([]domain.Row, error) { return rows, nil }, layout, "Roadmap")
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 30})
	msg := m.Init()()
	m.Update(msg)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadsRows(t *testing.T) {
	m := newLoadedModel(t, sampleRows())

	assert.False(t, m.loading)
	assert.Len(t, m.table.Rows(), 2)
	assert.Equal(t, "GENIE", m.SelectedRow()[domain.ColumnProject])

	view := m.View()
	assert.Contains(t, view, "Roadmap")
	assert.Contains(t, view, "2 initiatives")
	assert.Contains(t, view, "Wish engine")
}

func TestModel_ColumnsFollowLayout(t *testing.T) {
	m := newLoadedModel(t, sampleRows())

	columns := m.table.Columns()
	require.Len(t, columns, len(m.layout.Columns))
	for i, c := range m.layout.Columns {
		assert.Equal(t, string(c), columns[i].Title)
		assert.GreaterOrEqual(t, columns[i].Width, minColumnWidth)
		assert.LessOrEqual(t, columns[i].Width, maxColumnWidth)
	}
}

func TestModel_Navigation(t *testing.T) {
	m := newLoadedModel(t, sampleRows())

	m.Update(keyMsg("j"))
	assert.Equal(t, "OMNI", m.SelectedRow()[domain.ColumnProject])

	m.Update(keyMsg("k"))
	assert.Equal(t, "GENIE", m.SelectedRow()[domain.ColumnProject])

	m.Update(keyMsg("G"))
	assert.Equal(t, "OMNI", m.SelectedRow()[domain.ColumnProject])

	m.Update(keyMsg("g"))
	assert.Equal(t, "GENIE", m.SelectedRow()[domain.ColumnProject])
}

func TestModel_DetailToggle(t *testing.T) {
	m := newLoadedModel(t, sampleRows())

	m.Update(keyMsg("down"))
	m.Update(keyMsg("enter"))
	require.True(t, m.showDetail)
	assert.Contains(t, m.View(), "Channel routing")
	assert.Contains(t, m.View(), string(domain.ColumnWishFolder))

	_, cmd := m.Update(keyMsg("esc"))
	assert.False(t, m.showDetail)
	assert.Nil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m := newLoadedModel(t, sampleRows())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_EscapeQuitsFromTable(t *testing.T) {
	m := newLoadedModel(t, sampleRows())

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Empty(t *testing.T) {
	m := newLoadedModel(t, nil)

	assert.Nil(t, m.SelectedRow())
	m.Update(keyMsg("enter"))
	assert.False(t, m.showDetail)
	assert.Contains(t, m.View(), "No initiatives found")
}

func TestModel_LoadError(t *testing.T) {
	layout, err := domain.ParseLayout("")
	require.NoError(t, err)
	loadErr := errors.New("github unavailable")

	m := New(func(context.Context) ([]domain.Row, error) { return nil, loadErr }, layout, "Roadmap")
	assert.Contains(t, m.View(), "Loading initiatives")

	m.Update(m.Init()())
	assert.ErrorIs(t, m.Err(), loadErr)
	assert.Contains(t, m.View(), "github unavailable")
}

func TestModel_QuitCancelsLoad(t *testing.T) {
	layout, err := domain.ParseLayout("")
	require.NoError(t, err)

	started := make(chan struct{})
	m := New(func(ctx context.Context) ([]domain.Row, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}, layout, "Roadmap")

	msgs := make(chan tea.Msg, 1)
	load := m.Init()
	go func() { msgs <- load() }()
	<-started

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	select {
	case msg := <-msgs:
		require.IsType(t, MsgError{}, msg)
		assert.ErrorIs(t, msg.(MsgError).Err, context.Canceled)
		m.Update(msg)
		assert.NoError(t, m.Err())
	case <-time.After(5 * time.Second):
		t.Fatal("load was not canceled")
	}
}
