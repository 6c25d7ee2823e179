// Package meter accumulates run counters and reports a final summary with a
// host resource snapshot. Counters are updated from concurrent file workers,
// so every accessor takes the lock.
package meter

import (
	"context"
	"sync"
	"time"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// Meter is the concrete counter registry behind types.Meter.
type Meter struct {
	componentMetadata types.ComponentMetadata

	counts map[string]int64
	mutex  sync.Mutex

	startTime time.Time

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMeter creates a meter with all canonical counters at zero. The wall
// clock for ReportSummary starts at construction.
func NewMeter(ctx context.Context, options ...types.Option[types.Meter]) types.Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:    make(map[string]int64),
		startTime: time.Now(),
	}
	for _, name := range []string{
		types.MetricRecordingProcessedCount,
		types.MetricRecordingSkippedCount,
		types.MetricWindowProducedCount,
		types.MetricWindowSkippedCount,
		types.MetricValueEmittedCount,
	} {
		m.counts[name] = 0
	}
	var iface types.Meter = m
	for _, opt := range options {
		opt(iface)
	}
	return m
}

// IncrementCount adds one to the named counter.
func (m *Meter) IncrementCount(metric string) {
	m.AddCount(metric, 1)
}

// AddCount adds delta to the named counter, creating it if unknown.
func (m *Meter) AddCount(metric string, delta int64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.counts[metric] += delta
}

// GetCount returns the current value of the named counter.
func (m *Meter) GetCount(metric string) int64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.counts[metric]
}
