package domain

import "errors"

// Domain errors.
var (
	ErrMissingToken       = errors.New("GITHUB_TOKEN environment variable is not set")
	ErrInvalidRepository  = errors.New("invalid repository (expected owner/name)")
	ErrUnknownLayout      = errors.New("unknown layout")
	ErrUnknownFormat      = errors.New("unknown format")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrRemoteNotFound     = errors.New("git remote not found")
	ErrConfigExists       = errors.New("config file already exists")
	ErrUnexpectedResponse = errors.New("unexpected response from issue tracker")
)
