package pipeline

import "github.com/joeydtaylor/hrvkit/pkg/internal/types"

// WithResolver sets the subject resolver.
func WithResolver(r types.SubjectResolver) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectResolver(r)
	}
}

// WithReader sets the recording reader.
func WithReader(r types.RecordingReader) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectReader(r)
	}
}

// WithDetector sets the peak detector.
func WithDetector(d types.PeakDetector) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectDetector(d)
	}
}

// WithSink appends one or more table sinks.
func WithSink(sinks ...types.TableSink) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectSink(sinks...)
	}
}

// WithLogger attaches one or more loggers to the pipeline.
func WithLogger(loggers ...types.Logger) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectLogger(loggers...)
	}
}

// WithSensor attaches one or more sensors to the pipeline.
func WithSensor(sensors ...types.Sensor) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectSensor(sensors...)
	}
}

// WithMeter attaches one or more meters to the pipeline.
func WithMeter(meters ...types.Meter) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.ConnectMeter(meters...)
	}
}

// WithWindowConfig overrides the sliding-window parameters.
func WithWindowConfig(cfg types.WindowConfig) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetWindowConfig(cfg)
	}
}

// WithSamplingRate overrides the recording sampling rate in Hz.
func WithSamplingRate(rate float64) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetSamplingRate(rate)
	}
}

// WithConcurrency overrides the number of concurrent file workers.
func WithConcurrency(n int) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetConcurrency(n)
	}
}

// WithComponentMetadata overrides the pipeline's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Pipeline] {
	return func(p types.Pipeline) {
		p.SetComponentMetadata(name, id)
	}
}
