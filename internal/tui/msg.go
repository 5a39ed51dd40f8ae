package tui

import "github.com/namastexlabs/automagik-roadmap/internal/domain"

// MsgRowsLoaded is sent when the snapshot rows have been collected.
type MsgRowsLoaded struct {
	Rows []domain.Row
}

// MsgError is sent when loading fails.
type MsgError struct {
	Err error
}
