// Package sink persists merged result tables. All sinks implement
// types.TableSink and are invoked once per run, after the pipeline's merge
// barrier. The delimited renderer formats values to two decimal places and
// leaves cells beyond a column's own length blank.
package sink

import (
	"sync"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// component carries the metadata and logger plumbing shared by every sink.
type component struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// ConnectLogger attaches one or more loggers to the sink.
func (c *component) ConnectLogger(loggers ...types.Logger) {
	c.loggersLock.Lock()
	defer c.loggersLock.Unlock()
	c.loggers = append(c.loggers, loggers...)
}

// NotifyLoggers sends a log message to all attached loggers at the given level.
func (c *component) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	c.loggersLock.Lock()
	loggers := make([]types.Logger, len(c.loggers))
	copy(loggers, c.loggers)
	c.loggersLock.Unlock()

	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		switch level {
		case types.DebugLevel:
			logger.Debug(msg, keysAndValues...)
		case types.InfoLevel:
			logger.Info(msg, keysAndValues...)
		case types.WarnLevel:
			logger.Warn(msg, keysAndValues...)
		case types.ErrorLevel:
			logger.Error(msg, keysAndValues...)
		case types.DPanicLevel:
			logger.DPanic(msg, keysAndValues...)
		case types.PanicLevel:
			logger.Panic(msg, keysAndValues...)
		case types.FatalLevel:
			logger.Fatal(msg, keysAndValues...)
		}
	}
}

// GetComponentMetadata returns the sink's metadata.
func (c *component) GetComponentMetadata() types.ComponentMetadata {
	return c.componentMetadata
}

// SetComponentMetadata overrides the sink's name and id.
func (c *component) SetComponentMetadata(name string, id string) {
	c.componentMetadata.Name = name
	c.componentMetadata.ID = id
}
