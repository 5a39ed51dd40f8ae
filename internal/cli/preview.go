package cli

import (
	"context"
	"fmt"

	"github.com/namastexlabs/automagik-roadmap/internal/app"
	"github.com/namastexlabs/automagik-roadmap/internal/domain"
	"github.com/namastexlabs/automagik-roadmap/internal/tui"
	"github.com/namastexlabs/automagik-roadmap/internal/usecase"
	"github.com/spf13/cobra"
)

// newPreviewCommand creates the preview command.
func newPreviewCommand(c *app.Container) *cobra.Command {
	var repoFlag, labelFlag, layoutFlag string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the snapshot rows interactively",
		Long: `Fetch the initiatives and show the rows a snapshot would contain in an
interactive table. Nothing is written.

Press enter to see every column of the selected row, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := effectiveConfig(c)

			if c.Config.Token == "" {
				return domain.ErrMissingToken
			}
			repo, err := c.ResolveRepository(repoFlag)
			if err != nil {
				return err
			}
			layout, err := domain.ParseLayout(firstNonEmpty(layoutFlag, cfg.Export.Layout))
			if err != nil {
				return err
			}

			in := usecase.PreviewRoadmapInput{
				Repository: repo,
				Token:      c.Config.Token,
				Label:      firstNonEmpty(labelFlag, cfg.GitHub.Label, domain.InitiativeLabel),
			}
			uc := c.PreviewRoadmapUseCase()
			load := func(ctx context.Context) ([]domain.Row, error) {
				out, err := uc.Execute(ctx, in)
				if err != nil {
					return nil, err
				}
				return out.Rows, nil
			}

			title := fmt.Sprintf("Roadmap · %s", repo)
			return launchPreviewFunc(tui.New(load, layout, title))
		},
	}

	cmd.Flags().StringVarP(&repoFlag, "repo", "R", "", "Repository to read (owner/name or remote URL)")
	cmd.Flags().StringVarP(&labelFlag, "label", "l", "", "Label marking initiatives (default \"initiative\")")
	cmd.Flags().StringVar(&layoutFlag, "layout", "", "Column layout: stakeholder, legacy")

	return cmd
}
