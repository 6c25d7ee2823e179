// Package recording loads raw PPG/BVP recording files.
//
// A recording file is delimited text with one header row followed by two
// value columns: sample amplitude and sample timestamp in epoch seconds.
// Files carrying a .gz suffix are decompressed transparently. Discovery
// expands the nested-folder glob pattern used by the acquisition layout
// (session directory / device directory / recording file) into a sorted
// path list so downstream column order is stable.
package recording

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// ErrEmptyRecording marks a file with a header but no data rows.
var ErrEmptyRecording = errors.New("recording has no data rows")

// Reader implements types.RecordingReader for delimited recording files.
type Reader struct {
	componentMetadata types.ComponentMetadata
	comma             rune
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewReader creates a Reader configured with the provided options.
func NewReader(options ...types.Option[types.RecordingReader]) types.RecordingReader {
	r := &Reader{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "RECORDING_READER",
		},
		comma: ',',
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Read loads one recording. The first row is skipped as a header; every
// following row must carry amplitude and timestamp as parseable floats.
func (r *Reader) Read(ctx context.Context, path string) (types.Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.Recording{}, fmt.Errorf("open recording %s: %w", path, err)
	}
	defer file.Close()

	var src io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return types.Recording{}, fmt.Errorf("open gzip recording %s: %w", path, err)
		}
		defer gz.Close()
		src = gz
	}

	cr := csv.NewReader(src)
	cr.Comma = r.comma
	cr.FieldsPerRecord = -1

	rec := types.Recording{SourcePath: path}
	row := 0
	for {
		if err := ctx.Err(); err != nil {
			return types.Recording{}, err
		}

		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.Recording{}, fmt.Errorf("read recording %s: %w", path, err)
		}
		row++
		if row == 1 {
			continue // header
		}
		if len(fields) < 2 {
			return types.Recording{}, fmt.Errorf("recording %s row %d: expected 2 columns, got %d", path, row, len(fields))
		}

		amplitude, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return types.Recording{}, fmt.Errorf("recording %s row %d: bad amplitude %q: %w", path, row, fields[0], err)
		}
		timestamp, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return types.Recording{}, fmt.Errorf("recording %s row %d: bad timestamp %q: %w", path, row, fields[1], err)
		}

		rec.Amplitude = append(rec.Amplitude, amplitude)
		rec.Timestamp = append(rec.Timestamp, timestamp)
	}

	if rec.Len() == 0 {
		return types.Recording{}, fmt.Errorf("%w: %s", ErrEmptyRecording, path)
	}

	r.NotifyLoggers(
		types.DebugLevel,
		"Loaded recording",
		"component", r.componentMetadata,
		"event", "Read",
		"result", "SUCCESS",
		"recording", path,
		"samples", rec.Len(),
	)
	return rec, nil
}

// Discover expands a glob pattern into a sorted list of recording paths.
func (r *Reader) Discover(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("discover recordings %q: %w", pattern, err)
	}
	sort.Strings(matches)

	r.NotifyLoggers(
		types.InfoLevel,
		"Discovered recordings",
		"component", r.componentMetadata,
		"event", "Discover",
		"result", "SUCCESS",
		"pattern", pattern,
		"count", len(matches),
	)
	return matches, nil
}

// ConnectLogger attaches one or more loggers to the reader.
func (r *Reader) ConnectLogger(loggers ...types.Logger) {
	r.loggersLock.Lock()
	defer r.loggersLock.Unlock()
	r.loggers = append(r.loggers, loggers...)
}

// NotifyLoggers sends a log message to all attached loggers at the given level.
func (r *Reader) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	r.loggersLock.Lock()
	loggers := make([]types.Logger, len(r.loggers))
	copy(loggers, r.loggers)
	r.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

// GetComponentMetadata returns the reader's metadata.
func (r *Reader) GetComponentMetadata() types.ComponentMetadata {
	return r.componentMetadata
}

// SetComponentMetadata overrides the reader's name and id.
func (r *Reader) SetComponentMetadata(name string, id string) {
	r.componentMetadata.Name = name
	r.componentMetadata.ID = id
}
