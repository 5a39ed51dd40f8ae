// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/namastexlabs/automagik-roadmap/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Repository root holding .roadmap.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/roadmap)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (repo + global).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	if l.repoRoot != "" {
		repo, err := loadFile(domain.RepoConfigPath(l.repoRoot))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if repo != nil {
			base = mergeConfigs(base, repo)
		}
	}

	return base, nil
}

// loadFile loads a configuration from a file.
// Unknown keys do not fail the load; they are reported in Config.Warnings.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Warnings = unknownKeyWarnings(path, data)
	return &cfg, nil
}

// unknownKeyWarnings decodes data strictly and lists keys with no matching field.
func unknownKeyWarnings(path string, data []byte) []string {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var scratch domain.Config
	err := dec.Decode(&scratch)

	var strictErr *toml.StrictMissingError
	if !errors.As(err, &strictErr) {
		return nil
	}
	warnings := make([]string, 0, len(strictErr.Errors))
	for _, e := range strictErr.Errors {
		warnings = append(warnings, fmt.Sprintf("unknown key in %s: %s", path, strings.Join(e.Key(), ".")))
	}
	return warnings
}

// mergeConfigs overlays every non-empty value of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string(nil), base.Warnings...), override.Warnings...)

	mergeString(&result.GitHub.Repository, override.GitHub.Repository)
	mergeString(&result.GitHub.Label, override.GitHub.Label)
	mergeString(&result.GitHub.APIURL, override.GitHub.APIURL)
	mergeString(&result.Export.Dir, override.Export.Dir)
	mergeString(&result.Export.Layout, override.Export.Layout)
	mergeString(&result.Export.Format, override.Export.Format)
	mergeString(&result.Log.Level, override.Log.Level)

	return &result
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
