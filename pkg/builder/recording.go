package builder

import (
	"github.com/joeydtaylor/hrvkit/pkg/internal/recording"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

type Recording = types.Recording

// ErrEmptyRecording is returned for a recording file with no data rows.
var ErrEmptyRecording = recording.ErrEmptyRecording

// NewRecordingReader creates a delimited recording reader.
func NewRecordingReader(options ...types.Option[types.RecordingReader]) types.RecordingReader {
	return recording.NewReader(options...)
}

// RecordingReaderWithComma sets the field delimiter.
func RecordingReaderWithComma(comma rune) types.Option[types.RecordingReader] {
	return recording.WithComma(comma)
}

// RecordingReaderWithLogger attaches loggers to the reader.
func RecordingReaderWithLogger(loggers ...types.Logger) types.Option[types.RecordingReader] {
	return recording.WithLogger(loggers...)
}
