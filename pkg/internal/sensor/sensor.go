// Package sensor provides callback hooks for pipeline telemetry. The
// pipeline invokes hooks as recordings and windows move through a run;
// anything registered on the sensor observes them without the pipeline
// knowing who is listening. Attached meters are incremented automatically
// on the recording and window hooks.
package sensor

import (
	"context"
	"sync"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// Sensor is the concrete hook registry behind types.Sensor.
type Sensor struct {
	componentMetadata types.ComponentMetadata

	onRecordingStart     []func(types.ComponentMetadata, string)
	onRecordingSkipped   []func(types.ComponentMetadata, string, error)
	onRecordingProcessed []func(types.ComponentMetadata, string, string, int)
	onWindowProduced     []func(types.ComponentMetadata, string, float64)
	onWindowSkipped      []func(types.ComponentMetadata, string, types.SkipReason)
	onRunStart           []func(types.ComponentMetadata, int)
	onRunComplete        []func(types.ComponentMetadata, types.RunReport)
	onTableSaved         []func(types.ComponentMetadata, int, int)
	callbackLock         sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
	meters      []types.Meter
	metersLock  sync.Mutex
}

// NewSensor creates a sensor and applies the provided options.
func NewSensor(ctx context.Context, options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}
	var iface types.Sensor = s
	for _, opt := range options {
		opt(iface)
	}
	return s
}

func (s *Sensor) snapshotMeters() []types.Meter {
	s.metersLock.Lock()
	defer s.metersLock.Unlock()
	out := make([]types.Meter, len(s.meters))
	copy(out, s.meters)
	return out
}
