// Package detector marks heartbeats in raw PPG/BVP amplitude sequences.
//
// The MovingAverage detector follows the two-moving-average scheme common in
// PPG beat detection: the signal is band-pass filtered to the cardiac band,
// clipped and squared, and regions where a short (peak-scale) moving average
// rises above a long (beat-scale) moving average plus a dynamic offset are
// taken as beats. One flag is raised per region, at the filtered signal's
// maximum, with a refractory spacing to suppress double detections.
//
// The detector sits behind types.PeakDetector so the estimator stage stays
// testable with synthetic flag sequences.
package detector

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// MovingAverage implements types.PeakDetector.
type MovingAverage struct {
	componentMetadata types.ComponentMetadata

	lowHz         float64 // Band-pass lower cutoff.
	highHz        float64 // Band-pass upper cutoff.
	peakWindowSec float64 // Short moving-average window, on the order of one systolic peak.
	beatWindowSec float64 // Long moving-average window, on the order of one beat.
	offsetFactor  float64 // Fraction of the mean squared signal added to the beat average.
	refractorySec float64 // Minimum spacing between flagged beats.

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMovingAverage creates a MovingAverage detector configured with the
// provided options. Defaults target wrist-worn PPG at common sampling rates.
func NewMovingAverage(options ...types.Option[types.PeakDetector]) types.PeakDetector {
	d := &MovingAverage{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PEAK_DETECTOR",
		},
		lowHz:         0.5,
		highHz:        8.0,
		peakWindowSec: 0.111,
		beatWindowSec: 0.667,
		offsetFactor:  0.02,
		refractorySec: 0.2,
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// Detect returns a flag per sample, true where a beat was detected. The
// returned slice is always the same length as the input; a zero-length input
// yields zero-length flags without error.
func (d *MovingAverage) Detect(amplitude []float64, samplingRate float64) ([]bool, error) {
	if samplingRate <= 0 {
		return nil, fmt.Errorf("sampling rate must be positive, got %v", samplingRate)
	}

	flags := make([]bool, len(amplitude))
	if len(amplitude) == 0 {
		return flags, nil
	}

	filtered := bandpass(amplitude, samplingRate, d.lowHz, d.highHz)

	// Clipped square emphasizes systolic upstrokes and removes troughs.
	squared := make([]float64, len(filtered))
	for i, v := range filtered {
		if v > 0 {
			squared[i] = v * v
		}
	}

	peakWin := windowSamples(d.peakWindowSec, samplingRate)
	beatWin := windowSamples(d.beatWindowSec, samplingRate)
	if beatWin <= peakWin {
		beatWin = peakWin + 1
	}

	maPeak := centeredMean(squared, peakWin)
	maBeat := centeredMean(squared, beatWin)
	offset := d.offsetFactor * stat.Mean(squared, nil)

	refractory := windowSamples(d.refractorySec, samplingRate)
	lastPeak := -refractory - 1
	count := 0

	i := 0
	for i < len(squared) {
		if maPeak[i] <= maBeat[i]+offset {
			i++
			continue
		}
		start := i
		for i < len(squared) && maPeak[i] > maBeat[i]+offset {
			i++
		}
		if i-start < peakWin {
			continue // region too short to be a beat
		}

		peak := start
		for j := start + 1; j < i; j++ {
			if filtered[j] > filtered[peak] {
				peak = j
			}
		}
		if peak-lastPeak <= refractory {
			continue
		}
		flags[peak] = true
		lastPeak = peak
		count++
	}

	d.NotifyLoggers(
		types.DebugLevel,
		"Detected beats",
		"component", d.componentMetadata,
		"event", "Detect",
		"result", "SUCCESS",
		"samples", len(amplitude),
		"beats", count,
	)
	return flags, nil
}

func windowSamples(seconds, samplingRate float64) int {
	n := int(math.Round(seconds * samplingRate))
	if n < 1 {
		n = 1
	}
	return n
}

// centeredMean returns the centered moving average of data with the given
// window, clamping the window at the sequence edges.
func centeredMean(data []float64, window int) []float64 {
	n := len(data)
	prefix := make([]float64, n+1)
	for i, v := range data {
		prefix[i+1] = prefix[i] + v
	}

	half := window / 2
	out := make([]float64, n)
	for i := range data {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > n {
			hi = n
		}
		out[i] = (prefix[hi] - prefix[lo]) / float64(hi-lo)
	}
	return out
}

// ConnectLogger attaches one or more loggers to the detector.
func (d *MovingAverage) ConnectLogger(loggers ...types.Logger) {
	d.loggersLock.Lock()
	defer d.loggersLock.Unlock()
	d.loggers = append(d.loggers, loggers...)
}

// NotifyLoggers sends a log message to all attached loggers at the given level.
func (d *MovingAverage) NotifyLoggers(level types.LogLevel, msg string, keysAndValues ...interface{}) {
	d.loggersLock.Lock()
	loggers := make([]types.Logger, len(d.loggers))
	copy(loggers, d.loggers)
	d.loggersLock.Unlock()

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

// GetComponentMetadata returns the detector's metadata.
func (d *MovingAverage) GetComponentMetadata() types.ComponentMetadata {
	return d.componentMetadata
}

// SetComponentMetadata overrides the detector's name and id.
func (d *MovingAverage) SetComponentMetadata(name string, id string) {
	d.componentMetadata.Name = name
	d.componentMetadata.ID = id
}
