package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/namastexlabs/automagik-roadmap/internal/domain"
)

// ExportRoadmapInput contains the parameters for exporting a snapshot.
// Fields are ordered to minimize memory padding.
type ExportRoadmapInput struct {
	Writer     domain.SnapshotWriter // Output encoder (CSV or YAML)
	Repository domain.Repository     // Repository to read initiatives from
	Token      string                // Credential the issue source authenticates with
	Label      string                // Label marking initiatives
	OutputDir  string                // Directory receiving the snapshot file
	Layout     domain.Layout         // Column order
	DryRun     bool                  // Build rows but write nothing
}

// ExportRoadmapOutput contains the result of an export.
type ExportRoadmapOutput struct {
	Path    string       // Snapshot path (computed even when nothing was written)
	Rows    []domain.Row // Sorted rows
	Written bool         // Whether the file was written
}

// ExportRoadmap is the use case for writing a dated roadmap snapshot.
type ExportRoadmap struct {
	snapshots domain.SnapshotStore
	clock     domain.Clock
	rows      rowCollector
}

// NewExportRoadmap creates a new ExportRoadmap use case.
func NewExportRoadmap(issues domain.IssueSource, snapshots domain.SnapshotStore, clock domain.Clock, logger *slog.Logger) *ExportRoadmap {
	return &ExportRoadmap{
		snapshots: snapshots,
		clock:     clock,
		rows:      rowCollector{issues: issues, logger: logger},
	}
}

// Execute fetches initiatives, maps them to rows and writes the snapshot.
// A missing token aborts before any request with domain.ErrMissingToken.
// When no initiative is found, no file is written.
func (uc *ExportRoadmap) Execute(ctx context.Context, in ExportRoadmapInput) (*ExportRoadmapOutput, error) {
	if in.Token == "" {
		return nil, domain.ErrMissingToken
	}
	if in.Writer == nil {
		return nil, fmt.Errorf("%w: no writer", domain.ErrUnknownFormat)
	}

	rows, err := uc.rows.collect(ctx, in.Repository, in.Label)
	if err != nil {
		return nil, err
	}

	name := domain.SnapshotFileName(uc.clock.Now(), in.Writer.Format())
	out := &ExportRoadmapOutput{
		Path: filepath.Join(in.OutputDir, name),
		Rows: rows,
	}
	if len(rows) == 0 || in.DryRun {
		return out, nil
	}

	err = uc.snapshots.Save(out.Path, func(w io.Writer) error {
		return in.Writer.Write(w, in.Layout, rows)
	})
	if err != nil {
		return nil, fmt.Errorf("write snapshot %s: %w", out.Path, err)
	}
	uc.rows.logger.Info("snapshot written", "path", out.Path, "rows", len(rows))
	out.Written = true
	return out, nil
}
