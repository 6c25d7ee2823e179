package types

// PeakDetector marks detected heartbeats in a raw amplitude sequence. The
// returned flag slice is always the same length as the input: flags[i] is true
// when sample i is a beat. Detection quality is the detector's concern; the
// downstream estimator only requires that some beat signal exists per sample.
type PeakDetector interface {
	Detect(amplitude []float64, samplingRate float64) ([]bool, error)

	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
