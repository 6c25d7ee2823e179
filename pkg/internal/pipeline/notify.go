package pipeline

import "github.com/joeydtaylor/hrvkit/pkg/internal/types"

// ConnectResolver sets the subject resolver used for every path.
func (p *Pipeline) ConnectResolver(r types.SubjectResolver) {
	p.resolver = r
}

// ConnectReader sets the recording reader.
func (p *Pipeline) ConnectReader(r types.RecordingReader) {
	p.reader = r
}

// ConnectDetector sets the peak detector.
func (p *Pipeline) ConnectDetector(d types.PeakDetector) {
	p.detector = d
}

// ConnectSink appends one or more table sinks, each invoked once per run.
func (p *Pipeline) ConnectSink(sinks ...types.TableSink) {
	p.sinks = append(p.sinks, sinks...)
}

// ConnectLogger attaches one or more loggers to the pipeline.
func (p *Pipeline) ConnectLogger(loggers ...types.Logger) {
	p.loggersLock.Lock()
	defer p.loggersLock.Unlock()
	p.loggers = append(p.loggers, loggers...)
}

// ConnectSensor attaches one or more sensors observing the run.
func (p *Pipeline) ConnectSensor(sensors ...types.Sensor) {
	p.sensorLock.Lock()
	defer p.sensorLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			p.sensors = append(p.sensors, s)
		}
	}
}

// ConnectMeter attaches one or more meters updated with run totals.
func (p *Pipeline) ConnectMeter(meters ...types.Meter) {
	p.metersLock.Lock()
	defer p.metersLock.Unlock()
	for _, m := range meters {
		if m != nil {
			p.meters = append(p.meters, m)
		}
	}
}

// SetWindowConfig overrides the sliding-window parameters.
func (p *Pipeline) SetWindowConfig(cfg types.WindowConfig) {
	p.windowConfig = cfg
}

// SetSamplingRate overrides the recording sampling rate in Hz.
func (p *Pipeline) SetSamplingRate(rate float64) {
	p.samplingRate = rate
}

// SetConcurrency overrides the number of concurrent file workers.
func (p *Pipeline) SetConcurrency(n int) {
	p.concurrency = n
}

func (p *Pipeline) snapshotSensors() []types.Sensor {
	p.sensorLock.Lock()
	defer p.sensorLock.Unlock()
	out := make([]types.Sensor, len(p.sensors))
	copy(out, p.sensors)
	return out
}

func (p *Pipeline) snapshotMeters() []types.Meter {
	p.metersLock.Lock()
	defer p.metersLock.Unlock()
	out := make([]types.Meter, len(p.meters))
	copy(out, p.meters)
	return out
}

// NotifyLoggers sends a log message to all attached loggers at the given level.
func (p *Pipeline) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	p.loggersLock.Lock()
	loggers := make([]types.Logger, len(p.loggers))
	copy(loggers, p.loggers)
	p.loggersLock.Unlock()

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

// GetComponentMetadata returns the pipeline's metadata.
func (p *Pipeline) GetComponentMetadata() types.ComponentMetadata {
	return p.componentMetadata
}

// SetComponentMetadata overrides the pipeline's name and id.
func (p *Pipeline) SetComponentMetadata(name string, id string) {
	p.componentMetadata.Name = name
	p.componentMetadata.ID = id
}
