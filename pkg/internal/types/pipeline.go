package types

import "context"

// RunReport summarizes one full pass over the discovered recording files.
type RunReport struct {
	FilesDiscovered int // Recording files matched by discovery.
	FilesProcessed  int // Files that contributed a result column.
	FilesSkipped    int // Files dropped for any reason (resolution, read, detector, empty result).
	WindowsProduced int // Windows that yielded an RMSSD value, across all files.
	WindowsSkipped  int // Windows skipped for insufficient peaks or intervals.
	NothingToSave   bool
	OutputWritten   bool
}

// Pipeline orchestrates the per-file extraction flow (resolve, read, detect,
// window, estimate) and the final merge-and-persist step. Per-file failures
// are recoverable and never abort the run; only configuration errors surface
// from Run.
type Pipeline interface {
	// Run processes every path, merges the surviving columns in sorted path
	// order, and writes the table to every connected sink. An empty path list
	// or zero surviving columns yields NothingToSave without error.
	Run(ctx context.Context, paths []string) (RunReport, error)

	ConnectResolver(SubjectResolver)
	ConnectReader(RecordingReader)
	ConnectDetector(PeakDetector)
	ConnectSink(...TableSink)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)
	ConnectMeter(...Meter)

	SetWindowConfig(WindowConfig)
	SetSamplingRate(float64)
	SetConcurrency(int)

	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
