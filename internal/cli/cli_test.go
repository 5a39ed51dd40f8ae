package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/namastexlabs/automagik-roadmap/internal/app"
	"github.com/namastexlabs/automagik-roadmap/internal/domain"
	"github.com/namastexlabs/automagik-roadmap/internal/infra/filestore"
	"github.com/namastexlabs/automagik-roadmap/internal/infra/logging"
	"github.com/namastexlabs/automagik-roadmap/internal/testutil"
	"github.com/namastexlabs/automagik-roadmap/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)

// newTestContainer creates a container backed by mocks and a temporary
// repository root. Snapshots are written to disk.
func newTestContainer(t *testing.T, token string, issues ...domain.Issue) (*app.Container, *testutil.MockIssueSource) {
	t.Helper()

	source := &testutil.MockIssueSource{Issues: issues}
	cfg := domain.NewDefaultConfig()
	cfg.GitHub.Repository = "acme/roadmap"

	c := app.NewWithDeps(
		app.Config{RepoRoot: t.TempDir(), Token: token},
		cfg,
		source,
		filestore.New(),
		&testutil.MockClock{NowTime: testNow},
		logging.Discard(),
	)
	c.ConfigLoader = &testutil.MockConfigLoader{Config: cfg}
	c.ConfigManager = testutil.NewMockConfigManager()
	return c, source
}

func executeRoot(c *app.Container, args ...string) (string, string, error) {
	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func sampleIssues() []domain.Issue {
	return []domain.Issue{
		testutil.NewInitiative(1, "Channel routing", "project:omni", "stage:alpha", "quarter:2026-q1"),
		testutil.NewInitiative(2, "Wish engine", "project:genie", "stage:planned", "quarter:2025-q4"),
	}
}

// =============================================================================
// Root Command Tests
// =============================================================================

func TestRootCommand_ListsCommands(t *testing.T) {
	c, _ := newTestContainer(t, "token")

	stdout, _, err := executeRoot(c, "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "export")
	assert.Contains(t, stdout, "preview")
	assert.Contains(t, stdout, "config")
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, _ := newTestContainer(t, "token")
	c.AppConfig.Warnings = []string{"unknown key \"tokn\" in .roadmap.toml"}

	_, stderr, err := executeRoot(c, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key \"tokn\"")
}

// =============================================================================
// Export Command Tests
// =============================================================================

func TestExportCommand_WritesSnapshot(t *testing.T) {
	c, source := newTestContainer(t, "token", sampleIssues()...)

	stdout, _, err := executeRoot(c, "export")

	require.NoError(t, err)
	path := filepath.Join(c.Config.RepoRoot, "exports", "roadmap-2025-10-06.csv")
	assert.Contains(t, stdout, "Exported 2 initiatives to "+path)
	assert.Equal(t, "acme/roadmap", source.Repo.String())
	assert.Equal(t, domain.InitiativeLabel, source.Label)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "PROJECT,INITIATIVE,DESCRIPTION,STAGE,ETA,"))
	assert.True(t, strings.HasPrefix(lines[1], "GENIE,Wish engine,"))
	assert.True(t, strings.HasPrefix(lines[2], "OMNI,Channel routing,"))
}

func TestExportCommand_Flags(t *testing.T) {
	c, source := newTestContainer(t, "token", sampleIssues()...)
	out := t.TempDir()

	stdout, _, err := executeRoot(c, "export",
		"--repo", "git@github.com:other/repo.git",
		"--label", "initiative",
		"--out", out,
		"--layout", "legacy",
		"--format", "yaml",
	)

	require.NoError(t, err)
	path := filepath.Join(out, "roadmap-2025-10-06.yaml")
	assert.Contains(t, stdout, path)
	assert.Equal(t, "other/repo", source.Repo.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "QUARTER: 2025-Q4")
	assert.Contains(t, string(data), "PRIORITY:")
	assert.NotContains(t, string(data), "ETA:")
}

func TestExportCommand_MissingToken(t *testing.T) {
	c, source := newTestContainer(t, "", sampleIssues()...)

	_, _, err := executeRoot(c, "export")

	require.ErrorIs(t, err, domain.ErrMissingToken)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	assert.Zero(t, source.CallCount)
	_, statErr := os.Stat(filepath.Join(c.Config.RepoRoot, "exports"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportCommand_NoInitiatives(t *testing.T) {
	c, _ := newTestContainer(t, "token")

	stdout, _, err := executeRoot(c, "export")

	require.NoError(t, err)
	assert.Contains(t, stdout, "No initiatives found to export")
	_, statErr := os.Stat(filepath.Join(c.Config.RepoRoot, "exports"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportCommand_DryRun(t *testing.T) {
	c, _ := newTestContainer(t, "token", sampleIssues()...)

	stdout, _, err := executeRoot(c, "export", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Would export 2 initiatives")
	assert.Contains(t, stdout, "[GENIE] Wish engine (Planned, Q4 2025)")
	_, statErr := os.Stat(filepath.Join(c.Config.RepoRoot, "exports"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportCommand_InvalidOptions(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{name: "unknown layout", args: []string{"export", "--layout", "quarterly"}, wantErr: domain.ErrUnknownLayout},
		{name: "unknown format", args: []string{"export", "--format", "xlsx"}, wantErr: domain.ErrUnknownFormat},
		{name: "invalid repository", args: []string{"export", "--repo", "roadmap"}, wantErr: domain.ErrInvalidRepository},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, source := newTestContainer(t, "token", sampleIssues()...)

			_, _, err := executeRoot(c, tt.args...)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, source.CallCount)
		})
	}
}

// =============================================================================
// Preview Command Tests
// =============================================================================

func TestPreviewCommand_LaunchesPreview(t *testing.T) {
	c, source := newTestContainer(t, "token", sampleIssues()...)

	var launched *tui.Model
	orig := launchPreviewFunc
	launchPreviewFunc = func(m *tui.Model) error {
		launched = m
		return nil
	}
	defer func() { launchPreviewFunc = orig }()

	_, _, err := executeRoot(c, "preview", "--layout", "legacy")

	require.NoError(t, err)
	require.NotNil(t, launched)
	assert.Zero(t, source.CallCount, "rows load when the program starts")

	launched.Update(launched.Init()())
	require.NotNil(t, launched.SelectedRow())
	assert.Equal(t, "GENIE", launched.SelectedRow()[domain.ColumnProject])
	assert.Contains(t, launched.View(), "legacy layout")
	assert.Equal(t, 1, source.CallCount)
}

func TestPreviewCommand_MissingToken(t *testing.T) {
	c, _ := newTestContainer(t, "")

	called := false
	orig := launchPreviewFunc
	launchPreviewFunc = func(*tui.Model) error {
		called = true
		return nil
	}
	defer func() { launchPreviewFunc = orig }()

	_, _, err := executeRoot(c, "preview")

	assert.ErrorIs(t, err, domain.ErrMissingToken)
	assert.False(t, called)
}

// =============================================================================
// Config Command Tests
// =============================================================================

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	c, _ := newTestContainer(t, "token")

	stdout, _, err := executeRoot(c, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Available Commands:")
	assert.Contains(t, stdout, "show")
	assert.Contains(t, stdout, "init")
}

func TestConfigShowCommand(t *testing.T) {
	c, _ := newTestContainer(t, "token")

	stdout, _, err := executeRoot(c, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, "/home/test/.config/roadmap/config.toml (not found)")
	assert.Contains(t, stdout, "/test/.roadmap.toml (not found)")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "repository = 'acme/roadmap'")
	assert.Contains(t, stdout, "layout = 'stakeholder'")
}

func TestConfigInitCommand(t *testing.T) {
	t.Run("repository", func(t *testing.T) {
		c, _ := newTestContainer(t, "token")
		manager := c.ConfigManager.(*testutil.MockConfigManager)

		stdout, _, err := executeRoot(c, "config", "init")

		require.NoError(t, err)
		assert.True(t, manager.InitRepoCalled)
		assert.False(t, manager.InitGlobalCalled)
		assert.Contains(t, stdout, "Created config file: /test/.roadmap.toml")
	})

	t.Run("global", func(t *testing.T) {
		c, _ := newTestContainer(t, "token")
		manager := c.ConfigManager.(*testutil.MockConfigManager)

		stdout, _, err := executeRoot(c, "config", "init", "--global")

		require.NoError(t, err)
		assert.True(t, manager.InitGlobalCalled)
		assert.Contains(t, stdout, "Created config file: /home/test/.config/roadmap/config.toml")
	})

	t.Run("already exists", func(t *testing.T) {
		c, _ := newTestContainer(t, "token")
		c.ConfigManager.(*testutil.MockConfigManager).InitRepoErr = domain.ErrConfigExists

		_, _, err := executeRoot(c, "config", "init")

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
