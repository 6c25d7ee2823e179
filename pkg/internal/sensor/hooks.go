package sensor

import (
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// RegisterOnRecordingStart registers callbacks invoked when a recording
// begins processing.
func (s *Sensor) RegisterOnRecordingStart(callbacks ...func(cm types.ComponentMetadata, path string)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onRecordingStart = append(s.onRecordingStart, callbacks...)
}

// RegisterOnRecordingSkipped registers callbacks invoked when a recording is
// dropped from the run.
func (s *Sensor) RegisterOnRecordingSkipped(callbacks ...func(cm types.ComponentMetadata, path string, err error)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onRecordingSkipped = append(s.onRecordingSkipped, callbacks...)
}

// RegisterOnRecordingProcessed registers callbacks invoked when a recording
// finishes with at least one produced window value.
func (s *Sensor) RegisterOnRecordingProcessed(callbacks ...func(cm types.ComponentMetadata, path string, label string, produced int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onRecordingProcessed = append(s.onRecordingProcessed, callbacks...)
}

// RegisterOnWindowProduced registers callbacks invoked per produced window value.
func (s *Sensor) RegisterOnWindowProduced(callbacks ...func(cm types.ComponentMetadata, label string, value float64)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onWindowProduced = append(s.onWindowProduced, callbacks...)
}

// RegisterOnWindowSkipped registers callbacks invoked per skipped window.
func (s *Sensor) RegisterOnWindowSkipped(callbacks ...func(cm types.ComponentMetadata, label string, reason types.SkipReason)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onWindowSkipped = append(s.onWindowSkipped, callbacks...)
}

// RegisterOnRunStart registers callbacks invoked once per run, before file work.
func (s *Sensor) RegisterOnRunStart(callbacks ...func(cm types.ComponentMetadata, fileCount int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onRunStart = append(s.onRunStart, callbacks...)
}

// RegisterOnRunComplete registers callbacks invoked once per run, after the barrier.
func (s *Sensor) RegisterOnRunComplete(callbacks ...func(cm types.ComponentMetadata, report types.RunReport)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onRunComplete = append(s.onRunComplete, callbacks...)
}

// RegisterOnTableSaved registers callbacks invoked after a sink write succeeds.
func (s *Sensor) RegisterOnTableSaved(callbacks ...func(cm types.ComponentMetadata, rows int, cols int)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onTableSaved = append(s.onTableSaved, callbacks...)
}

// InvokeOnRecordingStart triggers the recording-start callbacks.
func (s *Sensor) InvokeOnRecordingStart(cm types.ComponentMetadata, path string) {
	s.callbackLock.Lock()
	callbacks := s.onRecordingStart
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, path)
	}
}

// InvokeOnRecordingSkipped triggers the recording-skipped callbacks and
// increments the skip counter on attached meters.
func (s *Sensor) InvokeOnRecordingSkipped(cm types.ComponentMetadata, path string, err error) {
	s.callbackLock.Lock()
	callbacks := s.onRecordingSkipped
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, path, err)
	}
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(types.MetricRecordingSkippedCount)
	}
	s.NotifyLoggers(
		types.DebugLevel,
		"Recording skipped",
		"component", s.componentMetadata,
		"event", "InvokeOnRecordingSkipped",
		"recording", path,
		"error", err,
	)
}

// InvokeOnRecordingProcessed triggers the recording-processed callbacks and
// increments the processed counter on attached meters.
func (s *Sensor) InvokeOnRecordingProcessed(cm types.ComponentMetadata, path string, label string, produced int) {
	s.callbackLock.Lock()
	callbacks := s.onRecordingProcessed
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, path, label, produced)
	}
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(types.MetricRecordingProcessedCount)
		m.AddCount(types.MetricValueEmittedCount, int64(produced))
	}
}

// InvokeOnWindowProduced triggers the window-produced callbacks and
// increments the produced counter on attached meters.
func (s *Sensor) InvokeOnWindowProduced(cm types.ComponentMetadata, label string, value float64) {
	s.callbackLock.Lock()
	callbacks := s.onWindowProduced
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, label, value)
	}
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(types.MetricWindowProducedCount)
	}
}

// InvokeOnWindowSkipped triggers the window-skipped callbacks and increments
// the skipped counter on attached meters.
func (s *Sensor) InvokeOnWindowSkipped(cm types.ComponentMetadata, label string, reason types.SkipReason) {
	s.callbackLock.Lock()
	callbacks := s.onWindowSkipped
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, label, reason)
	}
	for _, m := range s.snapshotMeters() {
		m.IncrementCount(types.MetricWindowSkippedCount)
	}
}

// InvokeOnRunStart triggers the run-start callbacks.
func (s *Sensor) InvokeOnRunStart(cm types.ComponentMetadata, fileCount int) {
	s.callbackLock.Lock()
	callbacks := s.onRunStart
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, fileCount)
	}
	s.NotifyLoggers(
		types.DebugLevel,
		"Run started",
		"component", s.componentMetadata,
		"event", "InvokeOnRunStart",
		"files", fileCount,
	)
}

// InvokeOnRunComplete triggers the run-complete callbacks.
func (s *Sensor) InvokeOnRunComplete(cm types.ComponentMetadata, report types.RunReport) {
	s.callbackLock.Lock()
	callbacks := s.onRunComplete
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, report)
	}
}

// InvokeOnTableSaved triggers the table-saved callbacks.
func (s *Sensor) InvokeOnTableSaved(cm types.ComponentMetadata, rows int, cols int) {
	s.callbackLock.Lock()
	callbacks := s.onTableSaved
	s.callbackLock.Unlock()
	for _, cb := range callbacks {
		cb(cm, rows, cols)
	}
}
