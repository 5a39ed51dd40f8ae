package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Column is a snapshot column name.
type Column string

// Snapshot columns.
const (
	ColumnProject        Column = "PROJECT"
	ColumnInitiative     Column = "INITIATIVE"
	ColumnDescription    Column = "DESCRIPTION"
	ColumnStage          Column = "STAGE"
	ColumnETA            Column = "ETA"
	ColumnQuarter        Column = "QUARTER"
	ColumnExpectedResult Column = "EXPECTED_RESULT"
	ColumnStatusDetail   Column = "STATUS_DETAIL"
	ColumnPriority       Column = "PRIORITY"
	ColumnStartDate      Column = "START_DATE"
	ColumnEndDate        Column = "END_DATE"
	ColumnCreated        Column = "CREATED"
	ColumnUpdated        Column = "UPDATED"
	ColumnIssueURL       Column = "ISSUE_URL"
	ColumnWishFolder     Column = "WISH_FOLDER"
	ColumnOwner          Column = "OWNER"
)

// DateLayout is the format used for every date column.
const DateLayout = "2006-01-02"

// Row is one snapshot line. Every row built by BuildRow carries all columns;
// a Layout decides which of them are written and in what order.
type Row map[Column]string

// Values returns the row's values in the given column order.
func (r Row) Values(columns []Column) []string {
	values := make([]string, len(columns))
	for i, c := range columns {
		values[i] = r[c]
	}
	return values
}

// BuildRow maps an issue onto a snapshot row.
func BuildRow(issue Issue) Row {
	quarter := LabelValue(issue.Labels, DimensionQuarter)

	endDate := ""
	if issue.Closed != nil {
		endDate = formatDate(*issue.Closed)
	}

	return Row{
		ColumnProject:        strings.ToUpper(LabelValue(issue.Labels, DimensionProject)),
		ColumnInitiative:     issue.Title,
		ColumnDescription:    Description(issue.Body),
		ColumnStage:          FormatStage(LabelValue(issue.Labels, DimensionStage)),
		ColumnETA:            FormatQuarter(quarter),
		ColumnQuarter:        strings.ToUpper(quarter),
		ColumnExpectedResult: ExpectedResult(issue.Body),
		ColumnStatusDetail:   StatusDetail(issue),
		ColumnPriority:       strings.ToUpper(LabelValue(issue.Labels, DimensionPriority)),
		ColumnStartDate:      formatDate(issue.Created),
		ColumnEndDate:        endDate,
		ColumnCreated:        formatDate(issue.Created),
		ColumnUpdated:        formatDate(issue.Updated),
		ColumnIssueURL:       issue.URL,
		ColumnWishFolder:     WishFolder(issue.Body),
		ColumnOwner:          issue.Assignee,
	}
}

// StatusDetail summarizes discussion activity, noting when the issue is closed.
func StatusDetail(issue Issue) string {
	detail := fmt.Sprintf("%d comments", issue.Comments)
	if issue.IsClosed() {
		return "closed, " + detail
	}
	return detail
}

// SortRows orders rows by PROJECT, then STAGE, then ETA, ascending.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a[ColumnProject] != b[ColumnProject] {
			return a[ColumnProject] < b[ColumnProject]
		}
		if a[ColumnStage] != b[ColumnStage] {
			return a[ColumnStage] < b[ColumnStage]
		}
		return a[ColumnETA] < b[ColumnETA]
	})
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
