package domain

import (
	"path/filepath"
)

// Configuration file locations.
const (
	ConfigFileName     = "config.toml"  // Global config file name under GlobalConfigDir
	RepoConfigFileName = ".roadmap.toml" // Repository config file at the repository root
	appDirName         = "roadmap"
)

// Configuration defaults.
const (
	DefaultRepository = "namastexlabs/automagik-roadmap"
	DefaultAPIURL     = "https://api.github.com"
	DefaultOutputDir  = "exports"
	DefaultLogLevel   = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	GitHub   GitHubConfig `toml:"github"`
	Export   ExportConfig `toml:"export"`
	Log      LogConfig    `toml:"log"`
}

// GitHubConfig holds issue-tracker settings from the [github] section.
type GitHubConfig struct {
	Repository string `toml:"repository,omitempty" comment:"owner/name; empty infers it from the origin remote"`
	Label      string `toml:"label,omitempty" comment:"Label marking initiative issues"`
	APIURL     string `toml:"api_url,omitempty" comment:"REST API base URL"`
}

// ExportConfig holds snapshot settings from the [export] section.
type ExportConfig struct {
	Dir    string `toml:"dir,omitempty" comment:"Output directory, relative to the repository root"`
	Layout string `toml:"layout,omitempty" comment:"Column layout: stakeholder or legacy"`
	Format string `toml:"format,omitempty" comment:"Output format: csv or yaml"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty" comment:"Log level: debug, info, warn, error"`
}

// NewDefaultConfig returns the configuration used when no file overrides it.
// Repository is left empty so that it can be inferred from the git remote.
func NewDefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Label:  InitiativeLabel,
			APIURL: DefaultAPIURL,
		},
		Export: ExportConfig{
			Dir:    DefaultOutputDir,
			Layout: LayoutStakeholder,
			Format: string(FormatCSV),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// GlobalConfigDir returns the global configuration directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, appDirName)
}

// RepoConfigPath returns the repository configuration file path.
func RepoConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, RepoConfigFileName)
}
