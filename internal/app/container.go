// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/namastexlabs/automagik-roadmap/internal/domain"
	"github.com/namastexlabs/automagik-roadmap/internal/infra/config"
	"github.com/namastexlabs/automagik-roadmap/internal/infra/filestore"
	"github.com/namastexlabs/automagik-roadmap/internal/infra/git"
	"github.com/namastexlabs/automagik-roadmap/internal/infra/github"
	"github.com/namastexlabs/automagik-roadmap/internal/infra/logging"
	"github.com/namastexlabs/automagik-roadmap/internal/usecase"
)

// Environment variables read at startup.
const (
	EnvToken      = "GITHUB_TOKEN"
	EnvRepository = "ROADMAP_REPO"
	EnvAPIURL     = "GITHUB_API_URL"
)

// requestTimeout bounds every GitHub API request.
const requestTimeout = 30 * time.Second

// Config holds the application paths and credentials.
type Config struct {
	RepoRoot string // Repository root, or the working directory outside a repository
	Token    string // GitHub token from the environment
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Issues        domain.IssueSource
	Snapshots     domain.SnapshotStore
	Remotes       domain.RemoteResolver // nil outside a git repository
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config // Merged file configuration with environment overrides

	// Configuration
	Config Config
}

// New creates a new Container rooted at the git repository containing dir.
// Outside a repository, dir itself is used as the root.
func New(dir string) (*Container, error) {
	cfg := Config{RepoRoot: dir, Token: os.Getenv(EnvToken)}

	var remotes domain.RemoteResolver
	gitClient, err := git.NewClient(dir)
	switch {
	case err == nil:
		cfg.RepoRoot = gitClient.RepoRoot()
		remotes = gitClient
	case errors.Is(err, domain.ErrNotGitRepository):
		// Run from a plain directory; no remote to infer the repository from
	default:
		return nil, err
	}

	configLoader := config.NewLoader(cfg.RepoRoot)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}
	applyEnv(appConfig)

	logger := logging.New(os.Stderr, logging.ParseLevel(appConfig.Log.Level))

	httpClient := github.NewHTTPClient(cfg.Token, requestTimeout)

	return &Container{
		Issues:        github.NewClient(appConfig.GitHub.APIURL, httpClient),
		Snapshots:     filestore.New(),
		Remotes:       remotes,
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.RepoRoot),
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, issues domain.IssueSource, snapshots domain.SnapshotStore, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Issues:    issues,
		Snapshots: snapshots,
		Clock:     clock,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// applyEnv overrides file configuration with environment variables.
func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(EnvRepository); v != "" {
		cfg.GitHub.Repository = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.GitHub.APIURL = v
	}
}

// ResolveRepository picks the repository to export, in order: explicit
// value, configuration, origin remote, built-in default.
func (c *Container) ResolveRepository(explicit string) (domain.Repository, error) {
	if explicit != "" {
		return domain.ParseRepository(explicit)
	}
	if c.AppConfig != nil && c.AppConfig.GitHub.Repository != "" {
		return domain.ParseRepository(c.AppConfig.GitHub.Repository)
	}
	if c.Remotes != nil {
		if url, err := c.Remotes.RemoteURL("origin"); err == nil {
			if repo, err := domain.ParseRepository(url); err == nil {
				return repo, nil
			}
		}
	}
	return domain.ParseRepository(domain.DefaultRepository)
}

// ResolveOutputDir makes a relative output directory relative to the repository root.
func (c *Container) ResolveOutputDir(dir string) string {
	if dir == "" {
		dir = domain.DefaultOutputDir
	}
	if filepath.IsAbs(dir) || c.Config.RepoRoot == "" {
		return dir
	}
	return filepath.Join(c.Config.RepoRoot, dir)
}

// UseCase factory methods

// ExportRoadmapUseCase returns a new ExportRoadmap use case.
func (c *Container) ExportRoadmapUseCase() *usecase.ExportRoadmap {
	return usecase.NewExportRoadmap(c.Issues, c.Snapshots, c.Clock, c.Logger)
}

// PreviewRoadmapUseCase returns a new PreviewRoadmap use case.
func (c *Container) PreviewRoadmapUseCase() *usecase.PreviewRoadmap {
	return usecase.NewPreviewRoadmap(c.Issues, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
