package recording_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/joeydtaylor/hrvkit/pkg/internal/recording"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestReader_Read(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "BVP_addtime.csv", "Amplitude,Timestamp\n-1.5,1650000000.0\n2.25,1650000000.015625\n")

	r := recording.NewReader()
	rec, err := r.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if rec.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", rec.Len())
	}
	if rec.Amplitude[0] != -1.5 || rec.Amplitude[1] != 2.25 {
		t.Errorf("unexpected amplitudes: %v", rec.Amplitude)
	}
	if rec.Timestamp[1] != 1650000000.015625 {
		t.Errorf("unexpected timestamp: %v", rec.Timestamp[1])
	}
	if rec.SourcePath != path {
		t.Errorf("expected source path %q, got %q", path, rec.SourcePath)
	}
}

func TestReader_ReadGzip(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("Amplitude,Timestamp\n0.5,1650000001.0\n")); err != nil {
		t.Fatalf("writing gzip fixture: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("closing gzip fixture: %v", err)
	}
	path := filepath.Join(dir, "BVP_addtime.csv.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	r := recording.NewReader()
	rec, err := r.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if rec.Len() != 1 || rec.Amplitude[0] != 0.5 {
		t.Fatalf("unexpected recording: %+v", rec)
	}
}

func TestReader_EmptyRecording(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.csv", "Amplitude,Timestamp\n")

	r := recording.NewReader()
	_, err := r.Read(context.Background(), path)
	if !errors.Is(err, recording.ErrEmptyRecording) {
		t.Fatalf("expected ErrEmptyRecording, got %v", err)
	}
}

func TestReader_MalformedRow(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.csv", "Amplitude,Timestamp\nnot-a-number,1650000000\n")

	r := recording.NewReader()
	_, err := r.Read(context.Background(), path)
	if err == nil {
		t.Fatalf("expected parse error for malformed amplitude")
	}
}

func TestReader_MissingFile(t *testing.T) {
	r := recording.NewReader()
	_, err := r.Read(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestReader_DiscoverSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b", "a", "c"} {
		sub := filepath.Join(dir, name, "device")
		if err := os.MkdirAll(sub, 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		writeFile(t, sub, "BVP_addtime.csv", "Amplitude,Timestamp\n1,1\n")
	}

	r := recording.NewReader()
	paths, err := r.Discover(filepath.Join(dir, "*", "*", "*BVP_addtime.csv"))
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	for i := 1; i < len(paths); i++ {
		if paths[i-1] > paths[i] {
			t.Fatalf("expected sorted paths, got %v", paths)
		}
	}
}
