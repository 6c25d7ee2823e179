package recording

import "github.com/joeydtaylor/hrvkit/pkg/internal/types"

// WithComma overrides the field delimiter used when parsing recording files.
func WithComma(comma rune) types.Option[types.RecordingReader] {
	return func(r types.RecordingReader) {
		if rd, ok := r.(*Reader); ok {
			rd.comma = comma
		}
	}
}

// WithLogger attaches one or more loggers to the reader.
func WithLogger(loggers ...types.Logger) types.Option[types.RecordingReader] {
	return func(r types.RecordingReader) {
		r.ConnectLogger(loggers...)
	}
}

// WithComponentMetadata overrides the reader's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.RecordingReader] {
	return func(r types.RecordingReader) {
		r.SetComponentMetadata(name, id)
	}
}
