package types

// Canonical metric names tracked by the run meter.
const (
	MetricRecordingProcessedCount = "recording_processed_count"
	MetricRecordingSkippedCount   = "recording_skipped_count"
	MetricWindowProducedCount     = "window_produced_count"
	MetricWindowSkippedCount      = "window_skipped_count"
	MetricValueEmittedCount       = "value_emitted_count"
)

// Meter accumulates run counters. Implementations must be safe for concurrent
// use; the pipeline increments counters from multiple file workers.
type Meter interface {
	IncrementCount(metric string)
	AddCount(metric string, delta int64)
	GetCount(metric string) int64

	// ReportSummary emits the final counters, wall time, and a host snapshot
	// to the attached loggers. Called once after the run barrier.
	ReportSummary()

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
