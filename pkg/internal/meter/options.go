package meter

import "github.com/joeydtaylor/hrvkit/pkg/internal/types"

// WithLogger attaches one or more loggers to the meter.
func WithLogger(loggers ...types.Logger) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.ConnectLogger(loggers...)
	}
}

// WithComponentMetadata overrides the meter's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetComponentMetadata(name, id)
	}
}
