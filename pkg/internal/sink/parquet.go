package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// parquetCell is the long-format row schema used by the parquet sink. Blank
// cells of the wide table are simply absent, so every written row carries a
// produced RMSSD value.
type parquetCell struct {
	Column string  `parquet:"column"`
	Row    int32   `parquet:"row"`
	RMSSD  float64 `parquet:"rmssd"`
}

// ParquetSink writes a result table to a parquet file in long format: one
// record per produced cell, keyed by column label and row index.
type ParquetSink struct {
	component
	path        string
	compression Algorithm
}

// NewParquetSink creates a parquet table sink writing to path.
func NewParquetSink(ctx context.Context, path string, options ...types.Option[types.TableSink]) types.TableSink {
	s := &ParquetSink{
		path:        path,
		compression: CompressSnappy,
	}
	s.componentMetadata = types.ComponentMetadata{
		ID:   utils.GenerateUniqueHash(),
		Type: "PARQUET_SINK",
	}
	var iface types.TableSink = s
	for _, opt := range options {
		opt(iface)
	}
	return s
}

func (s *ParquetSink) codecOption() (parquet.WriterOption, error) {
	switch s.compression {
	case CompressNone:
		return parquet.Compression(&parquet.Uncompressed), nil
	case CompressSnappy:
		return parquet.Compression(&parquet.Snappy), nil
	case CompressGzip:
		return parquet.Compression(&parquet.Gzip), nil
	case CompressZstd:
		return parquet.Compression(&parquet.Zstd), nil
	default:
		return nil, fmt.Errorf("parquet sink: unsupported compression: %q", s.compression)
	}
}

// Write flattens the table into long-format records and writes them out.
func (s *ParquetSink) Write(ctx context.Context, table types.ResultTable) error {
	if table.Cols() == 0 {
		return fmt.Errorf("parquet sink: empty table")
	}
	codec, err := s.codecOption()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("parquet sink: %w", err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("parquet sink: %w", err)
	}
	defer f.Close()

	labels := table.Labels()
	cells := make([]parquetCell, 0, table.Rows()*table.Cols())
	for col := 0; col < table.Cols(); col++ {
		for row := 0; row < table.Rows(); row++ {
			if v, ok := table.Cell(row, col); ok {
				cells = append(cells, parquetCell{
					Column: labels[col],
					Row:    int32(row),
					RMSSD:  v,
				})
			}
		}
	}

	w := parquet.NewGenericWriter[parquetCell](f, codec)
	if _, err := w.Write(cells); err != nil {
		w.Close()
		return fmt.Errorf("parquet sink: write %s: %w", s.path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("parquet sink: close %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("parquet sink: close %s: %w", s.path, err)
	}

	s.NotifyLoggers(
		types.InfoLevel,
		"Wrote parquet table",
		"component", s.componentMetadata,
		"event", "Write",
		"result", "SUCCESS",
		"output", s.path,
		"cells", len(cells),
	)
	return nil
}

// Path returns the configured output path.
func (s *ParquetSink) Path() string { return s.path }
