package usecase

import (
	"context"
	"log/slog"

	"github.com/namastexlabs/automagik-roadmap/internal/domain"
)

// PreviewRoadmapInput contains the parameters for previewing a snapshot.
type PreviewRoadmapInput struct {
	Repository domain.Repository
	Token      string
	Label      string
}

// PreviewRoadmapOutput contains the rows a snapshot would hold.
type PreviewRoadmapOutput struct {
	Rows []domain.Row
}

// PreviewRoadmap builds snapshot rows without writing anything.
type PreviewRoadmap struct {
	rows rowCollector
}

// NewPreviewRoadmap creates a new PreviewRoadmap use case.
func NewPreviewRoadmap(issues domain.IssueSource, logger *slog.Logger) *PreviewRoadmap {
	return &PreviewRoadmap{rows: rowCollector{issues: issues, logger: logger}}
}

// Execute returns the sorted rows for the repository's initiatives.
func (uc *PreviewRoadmap) Execute(ctx context.Context, in PreviewRoadmapInput) (*PreviewRoadmapOutput, error) {
	if in.Token == "" {
		return nil, domain.ErrMissingToken
	}
	rows, err := uc.rows.collect(ctx, in.Repository, in.Label)
	if err != nil {
		return nil, err
	}
	return &PreviewRoadmapOutput{Rows: rows}, nil
}
