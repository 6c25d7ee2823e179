package builder

import (
	"context"

	"github.com/joeydtaylor/hrvkit/pkg/internal/sensor"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

type ComponentMetadata = types.ComponentMetadata

type RunReport = types.RunReport

// NewSensor creates a telemetry sensor.
func NewSensor(ctx context.Context, options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(ctx, options...)
}

// SensorWithLogger attaches loggers to the sensor.
func SensorWithLogger(loggers ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(loggers...)
}

// SensorWithMeter attaches meters to the sensor.
func SensorWithMeter(meters ...types.Meter) types.Option[types.Sensor] {
	return sensor.WithMeter(meters...)
}

// SensorWithOnRecordingStart registers recording-start callbacks.
func SensorWithOnRecordingStart(callbacks ...func(cm types.ComponentMetadata, path string)) types.Option[types.Sensor] {
	return sensor.WithOnRecordingStart(callbacks...)
}

// SensorWithOnRecordingSkipped registers recording-skipped callbacks.
func SensorWithOnRecordingSkipped(callbacks ...func(cm types.ComponentMetadata, path string, err error)) types.Option[types.Sensor] {
	return sensor.WithOnRecordingSkipped(callbacks...)
}

// SensorWithOnRecordingProcessed registers recording-processed callbacks.
func SensorWithOnRecordingProcessed(callbacks ...func(cm types.ComponentMetadata, path string, label string, produced int)) types.Option[types.Sensor] {
	return sensor.WithOnRecordingProcessed(callbacks...)
}

// SensorWithOnWindowProduced registers window-produced callbacks.
func SensorWithOnWindowProduced(callbacks ...func(cm types.ComponentMetadata, label string, value float64)) types.Option[types.Sensor] {
	return sensor.WithOnWindowProduced(callbacks...)
}

// SensorWithOnWindowSkipped registers window-skipped callbacks.
func SensorWithOnWindowSkipped(callbacks ...func(cm types.ComponentMetadata, label string, reason types.SkipReason)) types.Option[types.Sensor] {
	return sensor.WithOnWindowSkipped(callbacks...)
}

// SensorWithOnRunComplete registers run-complete callbacks.
func SensorWithOnRunComplete(callbacks ...func(cm types.ComponentMetadata, report types.RunReport)) types.Option[types.Sensor] {
	return sensor.WithOnRunComplete(callbacks...)
}
