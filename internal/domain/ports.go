package domain

import (
	"context"
	"io"
	"time"
)

// IssueSource lists issues from the issue tracker.
type IssueSource interface {
	// ListIssues returns every issue (open and closed) carrying the label.
	ListIssues(ctx context.Context, repo Repository, label string) ([]Issue, error)
}

// SnapshotWriter serializes rows into one output format.
type SnapshotWriter interface {
	// Format returns the format name.
	Format() Format

	// Write encodes the header and rows in layout column order.
	Write(w io.Writer, layout Layout, rows []Row) error
}

// SnapshotStore persists snapshot files.
type SnapshotStore interface {
	// Save creates (or truncates) the file at path, creating parent
	// directories, and fills it through write.
	Save(path string, write func(io.Writer) error) error
}

// RemoteResolver resolves git remotes of the working repository.
type RemoteResolver interface {
	// RemoteURL returns the first URL of the named remote.
	RemoteURL(name string) (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- repo).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig creates the repository config file.
	InitRepoConfig(cfg *Config) error

	// InitGlobalConfig creates the global config file.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
