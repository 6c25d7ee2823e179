package types

import "context"

// Recording holds one raw PPG/BVP file in memory: aligned amplitude and
// timestamp sequences plus the path it was loaded from. Timestamps are epoch
// seconds, floating point, not necessarily integer-spaced.
type Recording struct {
	SourcePath string    // Path the recording was read from.
	Amplitude  []float64 // Sample amplitudes, one per row.
	Timestamp  []float64 // Epoch-second timestamps, aligned 1:1 with Amplitude.
}

// Len returns the number of samples in the recording.
func (r Recording) Len() int {
	return len(r.Amplitude)
}

// RecordingReader loads raw recordings from disk and discovers candidate files.
// Implementations must return aligned, equal-length amplitude and timestamp
// sequences and reject files with no data rows.
type RecordingReader interface {
	// Read loads a single recording file. The first row is treated as a header
	// and skipped. Returns ErrEmptyRecording-wrapping errors for files with no
	// usable rows.
	Read(ctx context.Context, path string) (Recording, error)

	// Discover expands a glob pattern into a sorted list of recording paths.
	Discover(pattern string) ([]string, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
