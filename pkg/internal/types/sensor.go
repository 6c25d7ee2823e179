package types

// Sensor observes pipeline activity through registered callbacks. Components
// invoke the hooks as work progresses; registration and invocation are
// decoupled so tests and meters can attach without touching pipeline code.
type Sensor interface {
	// Recording lifecycle hooks.
	RegisterOnRecordingStart(...func(cm ComponentMetadata, path string))
	RegisterOnRecordingSkipped(...func(cm ComponentMetadata, path string, err error))
	RegisterOnRecordingProcessed(...func(cm ComponentMetadata, path string, label string, produced int))

	InvokeOnRecordingStart(cm ComponentMetadata, path string)
	InvokeOnRecordingSkipped(cm ComponentMetadata, path string, err error)
	InvokeOnRecordingProcessed(cm ComponentMetadata, path string, label string, produced int)

	// Window-level hooks. Skips are frequent; callbacks must be cheap.
	RegisterOnWindowProduced(...func(cm ComponentMetadata, label string, value float64))
	RegisterOnWindowSkipped(...func(cm ComponentMetadata, label string, reason SkipReason))

	InvokeOnWindowProduced(cm ComponentMetadata, label string, value float64)
	InvokeOnWindowSkipped(cm ComponentMetadata, label string, reason SkipReason)

	// Run-level hooks.
	RegisterOnRunStart(...func(cm ComponentMetadata, fileCount int))
	RegisterOnRunComplete(...func(cm ComponentMetadata, report RunReport))
	RegisterOnTableSaved(...func(cm ComponentMetadata, rows int, cols int))

	InvokeOnRunStart(cm ComponentMetadata, fileCount int)
	InvokeOnRunComplete(cm ComponentMetadata, report RunReport)
	InvokeOnTableSaved(cm ComponentMetadata, rows int, cols int)

	ConnectLogger(...Logger)
	ConnectMeter(...Meter)
	GetMeters() []Meter
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
}
