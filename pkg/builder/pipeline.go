package builder

import (
	"context"

	"github.com/joeydtaylor/hrvkit/pkg/internal/pipeline"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// ErrEmptyFileResult tags a recording whose every window was skipped.
var ErrEmptyFileResult = pipeline.ErrEmptyFileResult

// NewPipeline creates an extraction pipeline with the reference window
// configuration (320-sample windows overlapping by 288 at 64 Hz).
func NewPipeline(ctx context.Context, options ...types.Option[types.Pipeline]) types.Pipeline {
	return pipeline.NewPipeline(ctx, options...)
}

// PipelineWithResolver sets the subject resolver.
func PipelineWithResolver(r types.SubjectResolver) types.Option[types.Pipeline] {
	return pipeline.WithResolver(r)
}

// PipelineWithReader sets the recording reader.
func PipelineWithReader(r types.RecordingReader) types.Option[types.Pipeline] {
	return pipeline.WithReader(r)
}

// PipelineWithDetector sets the peak detector.
func PipelineWithDetector(d types.PeakDetector) types.Option[types.Pipeline] {
	return pipeline.WithDetector(d)
}

// PipelineWithSink appends table sinks, each invoked once per run.
func PipelineWithSink(sinks ...types.TableSink) types.Option[types.Pipeline] {
	return pipeline.WithSink(sinks...)
}

// PipelineWithLogger attaches loggers to the pipeline.
func PipelineWithLogger(loggers ...types.Logger) types.Option[types.Pipeline] {
	return pipeline.WithLogger(loggers...)
}

// PipelineWithSensor attaches sensors to the pipeline.
func PipelineWithSensor(sensors ...types.Sensor) types.Option[types.Pipeline] {
	return pipeline.WithSensor(sensors...)
}

// PipelineWithMeter attaches meters to the pipeline.
func PipelineWithMeter(meters ...types.Meter) types.Option[types.Pipeline] {
	return pipeline.WithMeter(meters...)
}

// PipelineWithWindowConfig overrides the sliding-window parameters.
func PipelineWithWindowConfig(cfg types.WindowConfig) types.Option[types.Pipeline] {
	return pipeline.WithWindowConfig(cfg)
}

// PipelineWithSamplingRate overrides the sampling rate in Hz.
func PipelineWithSamplingRate(rate float64) types.Option[types.Pipeline] {
	return pipeline.WithSamplingRate(rate)
}

// PipelineWithConcurrency overrides the number of concurrent file workers.
func PipelineWithConcurrency(n int) types.Option[types.Pipeline] {
	return pipeline.WithConcurrency(n)
}
