// Package cli provides the command-line interface for roadmap.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/namastexlabs/automagik-roadmap/internal/app"
	"github.com/namastexlabs/automagik-roadmap/internal/domain"
	"github.com/namastexlabs/automagik-roadmap/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupSnapshot = "snapshot"
)

// launchPreviewFunc is a function variable for launching the preview, allowing it to be mocked in tests.
var launchPreviewFunc = launchPreview

// NewRootCommand creates the root command for roadmap.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "roadmap",
		Short: "Initiative snapshot exporter",
		Long: `roadmap exports the initiative issues of a GitHub repository into a
dated CSV snapshot for stakeholder reporting.

Each issue labeled "initiative" becomes one row. Project, stage, quarter and
priority come from "dimension:value" labels; description, expected results
and wish folder come from the issue body.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningStyle().Render("Warning: "+w))
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSnapshot, Title: "Snapshot Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupSnapshot

	previewCmd := newPreviewCommand(c)
	previewCmd.GroupID = groupSnapshot

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		exportCmd,
		previewCmd,
		configCmd,
	)

	return root
}

// effectiveConfig returns the container's merged configuration, or defaults.
func effectiveConfig(c *app.Container) *domain.Config {
	if c.AppConfig == nil {
		return domain.NewDefaultConfig()
	}
	return c.AppConfig
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// launchPreview runs the preview program in the alternate screen.
func launchPreview(model *tui.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}
