package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelValue(t *testing.T) {
	labels := []string{"initiative", "project:omni", "stage:in-progress", "quarter:2025-q4", "Priority:High"}

	assert.Equal(t, "omni", LabelValue(labels, DimensionProject))
	assert.Equal(t, "in-progress", LabelValue(labels, DimensionStage))
	assert.Equal(t, "2025-q4", LabelValue(labels, DimensionQuarter))
	assert.Equal(t, "High", LabelValue(labels, DimensionPriority))
	assert.Empty(t, LabelValue(labels, "team"))
	assert.Empty(t, LabelValue(nil, DimensionProject))
}

func TestLabelValue_FirstMatchWins(t *testing.T) {
	labels := []string{"project:genie", "project:omni"}
	assert.Equal(t, "genie", LabelValue(labels, DimensionProject))
}

func TestLabelValue_KeepsSecondSegmentOnly(t *testing.T) {
	assert.Equal(t, "omni", LabelValue([]string{"project:omni:core"}, DimensionProject))
}

func TestFormatQuarter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-q4", "Q4 2025"},
		{"2026-Q1", "Q1 2026"},
		{"backlog", "BACKLOG"},
		{"someday", "SOMEDAY"},
		{"2025-q5", "2025-Q5"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuarter(tt.in))
		})
	}
}

func TestFormatQuarter_Idempotent(t *testing.T) {
	for _, in := range []string{"2025-q4", "backlog", "Q4 2025"} {
		once := FormatQuarter(in)
		assert.Equal(t, once, FormatQuarter(once), in)
	}
}

func TestFormatStage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"wishlist", "Wishlist"},
		{"exploring", "Exploring"},
		{"rfc", "RFC"},
		{"in-progress", "In Progress"},
		{"IN-PROGRESS", "In Progress"},
		{"shipped", "Shipped"},
		{"ga", "GA"},
		{"needs-review", "Needs Review"},
		{"on_hold", "On Hold"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatStage(tt.in))
		})
	}
}
