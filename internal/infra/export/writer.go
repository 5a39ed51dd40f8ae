// Package export encodes snapshot rows into output formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/namastexlabs/automagik-roadmap/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure writers implement domain.SnapshotWriter.
var (
	_ domain.SnapshotWriter = CSVWriter{}
	_ domain.SnapshotWriter = YAMLWriter{}
)

// NewWriter returns the writer for the given format.
func NewWriter(f domain.Format) (domain.SnapshotWriter, error) {
	switch f {
	case domain.FormatCSV:
		return CSVWriter{}, nil
	case domain.FormatYAML:
		return YAMLWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, f)
	}
}

// CSVWriter writes a header line followed by one record per row.
// Records are terminated by CRLF.
type CSVWriter struct{}

// Format returns domain.FormatCSV.
func (CSVWriter) Format() domain.Format {
	return domain.FormatCSV
}

// Write encodes rows as CSV in layout column order.
func (CSVWriter) Write(w io.Writer, layout domain.Layout, rows []domain.Row) error {
	cw := csv.NewWriter(w)
	// Records end with CRLF, matching earlier snapshots
	cw.UseCRLF = true
	if err := cw.Write(layout.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Values(layout.Columns)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// YAMLWriter writes rows as a YAML sequence of mappings.
// Keys keep the layout column order.
type YAMLWriter struct{}

// Format returns domain.FormatYAML.
func (YAMLWriter) Format() domain.Format {
	return domain.FormatYAML
}

// Write encodes rows as YAML in layout column order.
func (YAMLWriter) Write(w io.Writer, layout domain.Layout, rows []domain.Row) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		item := &yaml.Node{Kind: yaml.MappingNode}
		for _, c := range layout.Columns {
			item.Content = append(item.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(c)},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: row[c]},
			)
		}
		doc.Content = append(doc.Content, item)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
