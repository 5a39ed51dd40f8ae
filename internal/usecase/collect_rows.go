package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/namastexlabs/automagik-roadmap/internal/domain"
)

// rowCollector fetches initiative issues and turns them into sorted rows.
type rowCollector struct {
	issues domain.IssueSource
	logger *slog.Logger
}

// collect lists issues carrying label and returns one sorted row per issue.
// Issues the source returns without the label are dropped.
func (rc rowCollector) collect(ctx context.Context, repo domain.Repository, label string) ([]domain.Row, error) {
	issues, err := rc.issues.ListIssues(ctx, repo, label)
	if err != nil {
		return nil, fmt.Errorf("fetch issues: %w", err)
	}
	rc.logger.Debug("fetched issues", "repository", repo.String(), "label", label, "count", len(issues))

	rows := make([]domain.Row, 0, len(issues))
	for _, issue := range issues {
		if !issue.HasLabel(label) {
			rc.logger.Debug("skipping issue without label", "number", issue.Number, "label", label)
			continue
		}
		rows = append(rows, domain.BuildRow(issue))
	}
	domain.SortRows(rows)
	return rows, nil
}
