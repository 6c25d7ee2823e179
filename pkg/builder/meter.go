package builder

import (
	"context"

	"github.com/joeydtaylor/hrvkit/pkg/internal/meter"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// Canonical metric names tracked by the run meter.
const (
	MetricRecordingProcessedCount = types.MetricRecordingProcessedCount
	MetricRecordingSkippedCount   = types.MetricRecordingSkippedCount
	MetricWindowProducedCount     = types.MetricWindowProducedCount
	MetricWindowSkippedCount      = types.MetricWindowSkippedCount
	MetricValueEmittedCount       = types.MetricValueEmittedCount
)

// NewMeter creates a run counter meter.
func NewMeter(ctx context.Context, options ...types.Option[types.Meter]) types.Meter {
	return meter.NewMeter(ctx, options...)
}

// MeterWithLogger attaches loggers to the meter.
func MeterWithLogger(loggers ...types.Logger) types.Option[types.Meter] {
	return meter.WithLogger(loggers...)
}
