package cli

import (
	"fmt"

	"github.com/namastexlabs/automagik-roadmap/internal/app"
	"github.com/namastexlabs/automagik-roadmap/internal/domain"
	"github.com/namastexlabs/automagik-roadmap/internal/infra/export"
	"github.com/namastexlabs/automagik-roadmap/internal/tui"
	"github.com/namastexlabs/automagik-roadmap/internal/usecase"
	"github.com/spf13/cobra"
)

// exportOptions holds options for the export command.
type exportOptions struct {
	Repo   string
	Label  string
	Out    string
	Layout string
	Format string
	DryRun bool
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a dated roadmap snapshot",
		Long: `Fetch every issue labeled as an initiative and write a dated snapshot.

The snapshot is written to <out>/roadmap-YYYY-MM-DD.csv (or .yaml). Rows are
sorted by project, then stage, then ETA. Nothing is written when no
initiative is found.

The repository defaults to [github] repository from the configuration,
then to the origin remote of the current git repository.

Requires the GITHUB_TOKEN environment variable.

Examples:
  # Export with the stakeholder layout
  roadmap export

  # Export the first report revision as YAML into reports/
  roadmap export --layout legacy --format yaml --out reports

  # Show what would be exported
  roadmap export --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := effectiveConfig(c)

			repo, err := c.ResolveRepository(opts.Repo)
			if err != nil {
				return err
			}
			layout, err := domain.ParseLayout(firstNonEmpty(opts.Layout, cfg.Export.Layout))
			if err != nil {
				return err
			}
			format, err := domain.ParseFormat(firstNonEmpty(opts.Format, cfg.Export.Format))
			if err != nil {
				return err
			}
			writer, err := export.NewWriter(format)
			if err != nil {
				return err
			}

			uc := c.ExportRoadmapUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ExportRoadmapInput{
				Writer:     writer,
				Repository: repo,
				Token:      c.Config.Token,
				Label:      firstNonEmpty(opts.Label, cfg.GitHub.Label, domain.InitiativeLabel),
				OutputDir:  c.ResolveOutputDir(firstNonEmpty(opts.Out, cfg.Export.Dir)),
				Layout:     layout,
				DryRun:     opts.DryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case len(out.Rows) == 0:
				_, _ = fmt.Fprintln(w, tui.WarningStyle().Render("No initiatives found to export"))
			case opts.DryRun:
				_, _ = fmt.Fprintf(w, "Would export %d initiatives to %s\n", len(out.Rows), out.Path)
				for _, row := range out.Rows {
					_, _ = fmt.Fprintf(w, "  [%s] %s (%s, %s)\n",
						row[domain.ColumnProject], row[domain.ColumnInitiative],
						row[domain.ColumnStage], row[domain.ColumnETA])
				}
			default:
				msg := fmt.Sprintf("Exported %d initiatives to %s", len(out.Rows), out.Path)
				_, _ = fmt.Fprintln(w, tui.SuccessStyle().Render(msg))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Repo, "repo", "R", "", "Repository to read (owner/name or remote URL)")
	cmd.Flags().StringVarP(&opts.Label, "label", "l", "", "Label marking initiatives (default \"initiative\")")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Output directory, relative to the repository root (default \"exports\")")
	cmd.Flags().StringVar(&opts.Layout, "layout", "", "Column layout: stakeholder, legacy")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: csv, yaml")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Build rows without writing the snapshot")

	return cmd
}
