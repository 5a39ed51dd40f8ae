package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRow(t *testing.T) {
	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 10, 2, 8, 30, 0, 0, time.UTC)
	issue := Issue{
		Number:   12,
		Title:    "Agent registry",
		Body:     sampleBody,
		State:    "open",
		Labels:   []string{"initiative", "project:omni", "stage:exploring", "quarter:2025-q4", "priority:high"},
		Assignee: "octocat",
		URL:      "https://github.com/acme/roadmap/issues/12",
		Comments: 3,
		Created:  created,
		Updated:  updated,
	}

	row := BuildRow(issue)

	assert.Equal(t, "OMNI", row[ColumnProject])
	assert.Equal(t, "Agent registry", row[ColumnInitiative])
	assert.Equal(t, "Unify agent orchestration across products.", row[ColumnDescription])
	assert.Equal(t, "Exploring", row[ColumnStage])
	assert.Equal(t, "Q4 2025", row[ColumnETA])
	assert.Equal(t, "2025-Q4", row[ColumnQuarter])
	assert.Equal(t, "- 50% fewer manual handoffs | - Shared agent registry", row[ColumnExpectedResult])
	assert.Equal(t, "3 comments", row[ColumnStatusDetail])
	assert.Equal(t, "HIGH", row[ColumnPriority])
	assert.Equal(t, "2025-09-01", row[ColumnStartDate])
	assert.Empty(t, row[ColumnEndDate])
	assert.Equal(t, "2025-09-01", row[ColumnCreated])
	assert.Equal(t, "2025-10-02", row[ColumnUpdated])
	assert.Equal(t, "https://github.com/acme/roadmap/issues/12", row[ColumnIssueURL])
	assert.Equal(t, ".genie/wishes/orchestration/", row[ColumnWishFolder])
	assert.Equal(t, "octocat", row[ColumnOwner])
}

func TestBuildRow_ClosedIssue(t *testing.T) {
	closed := time.Date(2025, 11, 30, 23, 0, 0, 0, time.UTC)
	row := BuildRow(Issue{State: "closed", Closed: &closed, Comments: 1})

	assert.Equal(t, "2025-11-30", row[ColumnEndDate])
	assert.Equal(t, "closed, 1 comments", row[ColumnStatusDetail])
}

func TestBuildRow_EmptyIssue(t *testing.T) {
	row := BuildRow(Issue{})

	for _, c := range []Column{ColumnProject, ColumnStage, ColumnETA, ColumnDescription, ColumnWishFolder, ColumnOwner, ColumnStartDate} {
		assert.Empty(t, row[c], string(c))
	}
	assert.Equal(t, "0 comments", row[ColumnStatusDetail])
}

func TestBuildRow_CarriesEveryLayoutColumn(t *testing.T) {
	row := BuildRow(Issue{})
	for _, name := range LayoutNames() {
		layout, err := ParseLayout(name)
		require.NoError(t, err)
		for _, c := range layout.Columns {
			_, ok := row[c]
			assert.True(t, ok, "%s missing %s", name, c)
		}
	}
}

func TestSortRows(t *testing.T) {
	rows := []Row{
		{ColumnProject: "OMNI", ColumnStage: "Shipped", ColumnETA: "Q1 2025", ColumnInitiative: "d"},
		{ColumnProject: "GENIE", ColumnStage: "Wishlist", ColumnETA: "", ColumnInitiative: "b"},
		{ColumnProject: "GENIE", ColumnStage: "Exploring", ColumnETA: "Q4 2025", ColumnInitiative: "a2"},
		{ColumnProject: "GENIE", ColumnStage: "Exploring", ColumnETA: "BACKLOG", ColumnInitiative: "a1"},
		{ColumnProject: "", ColumnStage: "Exploring", ColumnETA: "Q4 2025", ColumnInitiative: "z"},
	}

	SortRows(rows)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r[ColumnInitiative]
	}
	assert.Equal(t, []string{"z", "a1", "a2", "b", "d"}, got)
}

func TestSortRows_StableForEqualKeys(t *testing.T) {
	rows := []Row{
		{ColumnProject: "A", ColumnInitiative: "first"},
		{ColumnProject: "A", ColumnInitiative: "second"},
	}
	SortRows(rows)
	assert.Equal(t, "first", rows[0][ColumnInitiative])
	assert.Equal(t, "second", rows[1][ColumnInitiative])
}

func TestRow_Values(t *testing.T) {
	row := Row{ColumnProject: "OMNI", ColumnOwner: "octocat"}
	assert.Equal(t, []string{"octocat", "", "OMNI"}, row.Values([]Column{ColumnOwner, ColumnStage, ColumnProject}))
}
