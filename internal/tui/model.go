package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/namastexlabs/automagik-roadmap/internal/domain"
)

// LoadFunc collects the rows shown by the preview.
type LoadFunc func(ctx context.Context) ([]domain.Row, error)

// Column width bounds, in cells.
const (
	minColumnWidth = 6
	maxColumnWidth = 40
)

// Model is the bubbletea model for the snapshot preview.
type Model struct {
	// Dependencies
	load   LoadFunc
	ctx    context.Context    // Canceled when the preview quits
	cancel context.CancelFunc
	err    error

	// State
	rows   []domain.Row
	layout domain.Layout
	title  string

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	table  table.Model

	// Numeric state
	width      int
	height     int
	loading    bool
	showDetail bool
}

// New creates a preview model for the given layout. Rows are fetched by load
// when the program starts; quitting cancels the fetch.
func New(load LoadFunc, layout domain.Layout, title string) *Model {
	styles := DefaultStyles()
	ctx, cancel := context.WithCancel(context.Background())
	t := table.New(
		table.WithColumns(tableColumns(layout, nil)),
		table.WithFocused(true),
		table.WithStyles(styles.Table),
	)
	return &Model{
		load:    load,
		ctx:     ctx,
		cancel:  cancel,
		layout:  layout,
		title:   title,
		keys:    DefaultKeyMap(),
		styles:  styles,
		help:    help.New(),
		table:   t,
		loading: true,
	}
}

// Init starts loading the rows.
func (m *Model) Init() tea.Cmd {
	return m.loadRows()
}

func (m *Model) loadRows() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.load(m.ctx)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgRowsLoaded{Rows: rows}
	}
}

// SelectedRow returns the row under the cursor, or nil when there is none.
func (m *Model) SelectedRow() domain.Row {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	return m.rows[i]
}

// Err returns the loading error, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) setRows(rows []domain.Row) {
	m.rows = rows
	m.table.SetColumns(tableColumns(m.layout, rows))
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r.Values(m.layout.Columns))
	}
	m.table.SetRows(tableRows)
	m.table.GotoTop()
}

func (m *Model) updateLayoutSizes() {
	m.table.SetWidth(m.width)
	// Title line, blank line, footer margin and help line.
	height := m.height - 4
	if height < 3 {
		height = 3
	}
	m.table.SetHeight(height)
}

// tableColumns sizes each column to its widest value, within bounds.
func tableColumns(layout domain.Layout, rows []domain.Row) []table.Column {
	columns := make([]table.Column, len(layout.Columns))
	for i, c := range layout.Columns {
		width := len([]rune(string(c)))
		for _, r := range rows {
			if n := len([]rune(r[c])); n > width {
				width = n
			}
		}
		width = min(max(width, minColumnWidth), maxColumnWidth)
		columns[i] = table.Column{Title: string(c), Width: width}
	}
	return columns
}
