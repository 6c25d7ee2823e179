package sensor

import "github.com/joeydtaylor/hrvkit/pkg/internal/types"

// WithLogger attaches one or more loggers to the sensor.
func WithLogger(loggers ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(loggers...)
	}
}

// WithMeter attaches one or more meters to the sensor.
func WithMeter(meters ...types.Meter) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectMeter(meters...)
	}
}

// WithOnRecordingStart registers recording-start callbacks at construction.
func WithOnRecordingStart(callbacks ...func(cm types.ComponentMetadata, path string)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnRecordingStart(callbacks...)
	}
}

// WithOnRecordingSkipped registers recording-skipped callbacks at construction.
func WithOnRecordingSkipped(callbacks ...func(cm types.ComponentMetadata, path string, err error)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnRecordingSkipped(callbacks...)
	}
}

// WithOnRecordingProcessed registers recording-processed callbacks at construction.
func WithOnRecordingProcessed(callbacks ...func(cm types.ComponentMetadata, path string, label string, produced int)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnRecordingProcessed(callbacks...)
	}
}

// WithOnWindowProduced registers window-produced callbacks at construction.
func WithOnWindowProduced(callbacks ...func(cm types.ComponentMetadata, label string, value float64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnWindowProduced(callbacks...)
	}
}

// WithOnWindowSkipped registers window-skipped callbacks at construction.
func WithOnWindowSkipped(callbacks ...func(cm types.ComponentMetadata, label string, reason types.SkipReason)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnWindowSkipped(callbacks...)
	}
}

// WithOnRunComplete registers run-complete callbacks at construction.
func WithOnRunComplete(callbacks ...func(cm types.ComponentMetadata, report types.RunReport)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnRunComplete(callbacks...)
	}
}

// WithComponentMetadata overrides the sensor's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.SetComponentMetadata(name, id)
	}
}
