package domain

import (
	"strings"
	"time"
)

// InitiativeLabel is the label that marks an issue as a roadmap initiative.
const InitiativeLabel = "initiative"

// Issue is an issue as read from the tracker.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Created  time.Time
	Updated  time.Time
	Closed   *time.Time // nil while the issue is open
	Title    string
	Body     string
	State    string // "open" or "closed"
	Assignee string // Login of the assignee, empty if unassigned
	URL      string
	Labels   []string
	Number   int
	Comments int
}

// HasLabel reports whether the issue carries the given label (case-insensitive).
func (i Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if strings.EqualFold(l, name) {
			return true
		}
	}
	return false
}

// IsClosed reports whether the issue is closed.
func (i Issue) IsClosed() bool {
	return i.State == "closed"
}
