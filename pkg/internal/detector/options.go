package detector

import "github.com/joeydtaylor/hrvkit/pkg/internal/types"

// WithBand sets the band-pass cutoff frequencies in Hz.
func WithBand(lowHz, highHz float64) types.Option[types.PeakDetector] {
	return func(d types.PeakDetector) {
		if ma, ok := d.(*MovingAverage); ok {
			ma.lowHz = lowHz
			ma.highHz = highHz
		}
	}
}

// WithAveragingWindows sets the short (peak) and long (beat) moving-average
// window durations in seconds.
func WithAveragingWindows(peakSec, beatSec float64) types.Option[types.PeakDetector] {
	return func(d types.PeakDetector) {
		if ma, ok := d.(*MovingAverage); ok {
			ma.peakWindowSec = peakSec
			ma.beatWindowSec = beatSec
		}
	}
}

// WithOffsetFactor sets the fraction of the mean squared signal added to the
// beat-scale average before thresholding.
func WithOffsetFactor(factor float64) types.Option[types.PeakDetector] {
	return func(d types.PeakDetector) {
		if ma, ok := d.(*MovingAverage); ok {
			ma.offsetFactor = factor
		}
	}
}

// WithRefractory sets the minimum spacing between flagged beats in seconds.
func WithRefractory(seconds float64) types.Option[types.PeakDetector] {
	return func(d types.PeakDetector) {
		if ma, ok := d.(*MovingAverage); ok {
			ma.refractorySec = seconds
		}
	}
}

// WithLogger attaches one or more loggers to the detector.
func WithLogger(loggers ...types.Logger) types.Option[types.PeakDetector] {
	return func(d types.PeakDetector) {
		d.ConnectLogger(loggers...)
	}
}

// WithComponentMetadata overrides the detector's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.PeakDetector] {
	return func(d types.PeakDetector) {
		d.SetComponentMetadata(name, id)
	}
}
