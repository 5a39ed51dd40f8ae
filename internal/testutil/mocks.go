// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"time"

	"github.com/namastexlabs/automagik-roadmap/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIssueSource is a test double for domain.IssueSource.
// Fields are ordered to minimize memory padding.
type MockIssueSource struct {
	ListErr   error
	Repo      domain.Repository // Last requested repository
	Label     string            // Last requested label
	Issues    []domain.Issue
	CallCount int
}

// Ensure MockIssueSource implements domain.IssueSource interface.
var _ domain.IssueSource = (*MockIssueSource)(nil)

// ListIssues records the request and returns the configured issues.
func (m *MockIssueSource) ListIssues(_ context.Context, repo domain.Repository, label string) ([]domain.Issue, error) {
	m.CallCount++
	m.Repo = repo
	m.Label = label
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Issues, nil
}

// MockSnapshotStore is a test double for domain.SnapshotStore.
// Saved content is kept in memory keyed by path.
type MockSnapshotStore struct {
	Files   map[string][]byte
	SaveErr error
}

// NewMockSnapshotStore creates a new MockSnapshotStore with an initialized map.
func NewMockSnapshotStore() *MockSnapshotStore {
	return &MockSnapshotStore{Files: make(map[string][]byte)}
}

// Ensure MockSnapshotStore implements domain.SnapshotStore interface.
var _ domain.SnapshotStore = (*MockSnapshotStore)(nil)

// Save renders the content into memory.
func (m *MockSnapshotStore) Save(path string, write func(io.Writer) error) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	m.Files[path] = buf.Bytes()
	return nil
}

// MockRemoteResolver is a test double for domain.RemoteResolver.
type MockRemoteResolver struct {
	URLs map[string]string
}

// Ensure MockRemoteResolver implements domain.RemoteResolver interface.
var _ domain.RemoteResolver = (*MockRemoteResolver)(nil)

// RemoteURL returns the configured URL or domain.ErrRemoteNotFound.
func (m *MockRemoteResolver) RemoteURL(name string) (string, error) {
	url, ok := m.URLs[name]
	if !ok {
		return "", domain.ErrRemoteNotFound
	}
	return url, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitRepoErr      error
	InitGlobalErr    error
	InitConfig       *domain.Config // Config passed to the last Init call
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitRepoCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		RepoConfigInfo: domain.ConfigInfo{
			Path:   "/test/.roadmap.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/roadmap/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the call and returns configured error.
func (m *MockConfigManager) InitRepoConfig(cfg *domain.Config) error {
	m.InitRepoCalled = true
	m.InitConfig = cfg
	return m.InitRepoErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}

// NewInitiative returns an open initiative issue with the given dimension labels.
func NewInitiative(number int, title string, labels ...string) domain.Issue {
	created := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	return domain.Issue{
		Number:  number,
		Title:   title,
		State:   "open",
		Labels:  append([]string{domain.InitiativeLabel}, labels...),
		URL:     "https://github.com/acme/roadmap/issues/" + strconv.Itoa(number),
		Created: created,
		Updated: created.Add(24 * time.Hour),
	}
}

