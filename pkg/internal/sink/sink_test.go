package sink_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/xuri/excelize/v2"

	"github.com/joeydtaylor/hrvkit/pkg/internal/resultset"
	"github.com/joeydtaylor/hrvkit/pkg/internal/sink"
)

func buildTable(t *testing.T) *resultset.Table {
	t.Helper()
	a := resultset.NewColumn("s1_02")
	a.Append(707.11)
	a.Append(650.5)
	a.Append(712.0)
	b := resultset.NewColumn("s2_03")
	b.Append(540.25)
	return resultset.Merge(a, b)
}

func TestRenderDelimited(t *testing.T) {
	data, err := sink.RenderDelimited(buildTable(t), ',')
	if err != nil {
		t.Fatalf("RenderDelimited: %v", err)
	}
	want := "s1_02,s2_03\n707.11,540.25\n650.50,\n712.00,\n"
	if string(data) != want {
		t.Errorf("rendered output mismatch:\ngot:  %q\nwant: %q", string(data), want)
	}
}

func TestRenderDelimited_Semicolon(t *testing.T) {
	data, err := sink.RenderDelimited(buildTable(t), ';')
	if err != nil {
		t.Fatalf("RenderDelimited: %v", err)
	}
	if !strings.HasPrefix(string(data), "s1_02;s2_03\n") {
		t.Errorf("expected semicolon-delimited header, got %q", string(data))
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, name := range []string{"", "none", "gzip", "zstd", "snappy", "lz4", "brotli"} {
		if _, err := sink.ParseAlgorithm(name); err != nil {
			t.Errorf("ParseAlgorithm(%q): unexpected error %v", name, err)
		}
	}
	if _, err := sink.ParseAlgorithm("deflate"); err == nil {
		t.Error("ParseAlgorithm(deflate): expected error")
	}
	if got := sink.CompressGzip.Ext(); got != ".gz" {
		t.Errorf("gzip extension = %q, want .gz", got)
	}
	if got := sink.CompressNone.Ext(); got != "" {
		t.Errorf("none extension = %q, want empty", got)
	}
}

func TestCSVSink_Write(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.csv")
	s := sink.NewCSVSink(context.Background(), out)

	if err := s.Write(context.Background(), buildTable(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "s1_02,s2_03\n") {
		t.Errorf("unexpected file content: %q", string(data))
	}
}

func TestCSVSink_WriteGzip(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.csv")
	s := sink.NewCSVSink(context.Background(), out, sink.WithCompression(sink.CompressGzip))

	if err := s.Write(context.Background(), buildTable(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	f, err := os.Open(out + ".gz")
	if err != nil {
		t.Fatalf("expected gzip file: %v", err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer zr.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(zr); err != nil {
		t.Fatalf("decompress: %v", err)
	}

	plain, err := sink.RenderDelimited(buildTable(t), ',')
	if err != nil {
		t.Fatalf("RenderDelimited: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), plain) {
		t.Error("decompressed output differs from plain rendering")
	}
}

func TestCSVSink_EmptyTable(t *testing.T) {
	s := sink.NewCSVSink(context.Background(), filepath.Join(t.TempDir(), "results.csv"))
	if err := s.Write(context.Background(), resultset.Merge()); err == nil {
		t.Error("expected error for empty table")
	}
}

func TestExcelSink_Write(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.xlsx")
	s := sink.NewExcelSink(context.Background(), out, sink.WithSheet("HRV"))

	if err := s.Write(context.Background(), buildTable(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("HRV", "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if header != "s1_02" {
		t.Errorf("A1 = %q, want s1_02", header)
	}
	cell, err := f.GetCellValue("HRV", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if cell != "540.25" {
		t.Errorf("B2 = %q, want 540.25", cell)
	}
	// Short column leaves the cell blank instead of writing a zero.
	blank, err := f.GetCellValue("HRV", "B3")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if blank != "" {
		t.Errorf("B3 = %q, want empty", blank)
	}
}

func TestParquetSink_Write(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.parquet")
	s := sink.NewParquetSink(context.Background(), out, sink.WithCompression(sink.CompressZstd))

	if err := s.Write(context.Background(), buildTable(t)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("parquet file is empty")
	}
}

func TestParquetSink_RejectsUnsupportedCompression(t *testing.T) {
	s := sink.NewParquetSink(context.Background(), filepath.Join(t.TempDir(), "r.parquet"),
		sink.WithCompression(sink.CompressBrotli))
	if err := s.Write(context.Background(), buildTable(t)); err == nil {
		t.Error("expected error for brotli-compressed parquet")
	}
}

func TestS3Sink_RequiresClient(t *testing.T) {
	s := sink.NewS3Sink(context.Background(), "hrv-results", "exports",
		sink.WithClock(func() time.Time { return time.Unix(0, 0) }))
	err := s.Write(context.Background(), buildTable(t))
	if err == nil || !strings.Contains(err.Error(), "no client") {
		t.Errorf("expected missing-client error, got %v", err)
	}
}
