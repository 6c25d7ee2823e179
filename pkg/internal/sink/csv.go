package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// CSVSink renders a result table as delimited text and writes it to a file,
// optionally compressed. The final path is the configured path plus the
// compression extension, e.g. results.csv.gz for gzip.
type CSVSink struct {
	component
	path        string
	comma       rune
	compression Algorithm
}

// NewCSVSink creates a CSV table sink writing to path.
func NewCSVSink(ctx context.Context, path string, options ...types.Option[types.TableSink]) types.TableSink {
	s := &CSVSink{
		path:        path,
		comma:       ',',
		compression: CompressNone,
	}
	s.componentMetadata = types.ComponentMetadata{
		ID:   utils.GenerateUniqueHash(),
		Type: "CSV_SINK",
	}
	var iface types.TableSink = s
	for _, opt := range options {
		opt(iface)
	}
	return s
}

// Write renders the table and writes it out. An empty table (no columns) is
// an error; the caller decides whether a run produced anything to save.
func (s *CSVSink) Write(ctx context.Context, table types.ResultTable) error {
	if table.Cols() == 0 {
		return fmt.Errorf("csv sink: empty table")
	}
	data, err := RenderDelimited(table, s.comma)
	if err != nil {
		return fmt.Errorf("csv sink: render: %w", err)
	}

	out := s.path + s.compression.Ext()
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("csv sink: %w", err)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("csv sink: %w", err)
	}
	defer f.Close()

	cw, err := newCompressor(f, s.compression)
	if err != nil {
		return fmt.Errorf("csv sink: %w", err)
	}
	if _, err := cw.Write(data); err != nil {
		cw.Close()
		return fmt.Errorf("csv sink: write %s: %w", out, err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("csv sink: flush %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csv sink: close %s: %w", out, err)
	}

	s.NotifyLoggers(
		types.InfoLevel,
		"Wrote CSV table",
		"component", s.componentMetadata,
		"event", "Write",
		"result", "SUCCESS",
		"output", out,
		"columns", table.Cols(),
		"rows", table.Rows(),
	)
	return nil
}

// Path returns the configured output path without the compression extension.
func (s *CSVSink) Path() string { return s.path }
