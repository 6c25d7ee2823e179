package builder

import (
	"github.com/joeydtaylor/hrvkit/pkg/internal/detector"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// NewMovingAverageDetector creates the band-pass moving-average beat detector.
func NewMovingAverageDetector(options ...types.Option[types.PeakDetector]) types.PeakDetector {
	return detector.NewMovingAverage(options...)
}

// DetectorWithBand sets the band-pass corner frequencies in Hz.
func DetectorWithBand(lowHz, highHz float64) types.Option[types.PeakDetector] {
	return detector.WithBand(lowHz, highHz)
}

// DetectorWithAveragingWindows sets the peak and beat moving-average windows
// in seconds.
func DetectorWithAveragingWindows(peakSec, beatSec float64) types.Option[types.PeakDetector] {
	return detector.WithAveragingWindows(peakSec, beatSec)
}

// DetectorWithOffsetFactor sets the threshold offset as a fraction of the
// mean squared signal.
func DetectorWithOffsetFactor(factor float64) types.Option[types.PeakDetector] {
	return detector.WithOffsetFactor(factor)
}

// DetectorWithRefractory sets the minimum beat spacing in seconds.
func DetectorWithRefractory(seconds float64) types.Option[types.PeakDetector] {
	return detector.WithRefractory(seconds)
}

// DetectorWithLogger attaches loggers to the detector.
func DetectorWithLogger(loggers ...types.Logger) types.Option[types.PeakDetector] {
	return detector.WithLogger(loggers...)
}
