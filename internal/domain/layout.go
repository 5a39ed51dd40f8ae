package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Layout is a named column order for a snapshot.
type Layout struct {
	Name    string
	Columns []Column
}

// Layout names.
const (
	LayoutStakeholder = "stakeholder"
	LayoutLegacy      = "legacy"
)

var layouts = map[string]Layout{
	LayoutStakeholder: {
		Name: LayoutStakeholder,
		Columns: []Column{
			ColumnProject,
			ColumnInitiative,
			ColumnDescription,
			ColumnStage,
			ColumnETA,
			ColumnExpectedResult,
			ColumnStatusDetail,
			ColumnStartDate,
			ColumnEndDate,
			ColumnIssueURL,
			ColumnWishFolder,
			ColumnOwner,
		},
	},
	// SmartFit format, the first report revision.
	LayoutLegacy: {
		Name: LayoutLegacy,
		Columns: []Column{
			ColumnProject,
			ColumnInitiative,
			ColumnDescription,
			ColumnStage,
			ColumnQuarter,
			ColumnExpectedResult,
			ColumnStatusDetail,
			ColumnPriority,
			ColumnOwner,
			ColumnCreated,
			ColumnUpdated,
			ColumnIssueURL,
			ColumnWishFolder,
		},
	},
}

// ParseLayout resolves a layout by name. An empty name selects the stakeholder layout.
func ParseLayout(name string) (Layout, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = LayoutStakeholder
	}
	l, ok := layouts[key]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLayout, name, strings.Join(LayoutNames(), ", "))
	}
	cols := make([]Column, len(l.Columns))
	copy(cols, l.Columns)
	return Layout{Name: l.Name, Columns: cols}, nil
}

// LayoutNames returns the available layout names, sorted.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Header returns the column names as strings.
func (l Layout) Header() []string {
	header := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		header[i] = string(c)
	}
	return header
}
