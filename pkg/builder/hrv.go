package builder

import (
	"github.com/joeydtaylor/hrvkit/pkg/internal/hrv"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

type WindowConfig = types.WindowConfig

type WindowResult = types.WindowResult

type SkipReason = types.SkipReason

const (
	SkipNone            SkipReason = types.SkipNone
	SkipTooFewPeaks     SkipReason = types.SkipTooFewPeaks
	SkipTooFewIntervals SkipReason = types.SkipTooFewIntervals
)

// IntervalMillis returns the elapsed milliseconds between two epoch-second
// timestamps, each rounded to whole microseconds.
func IntervalMillis(t0, t1 float64) float64 {
	return hrv.IntervalMillis(t0, t1)
}

// Intervals converts peak timestamps into successive inter-beat intervals in
// milliseconds, or nil when fewer than two peaks are present.
func Intervals(peakTimestamps []float64) []float64 {
	return hrv.Intervals(peakTimestamps)
}

// RMSSD computes the root mean square of successive interval differences.
// ok is false when fewer than two intervals are present.
func RMSSD(intervals []float64) (value float64, ok bool) {
	return hrv.RMSSD(intervals)
}

// EstimateWindow runs the full single-window estimation over peak timestamps.
func EstimateWindow(peakTimestamps []float64) types.WindowResult {
	return hrv.EstimateWindow(peakTimestamps)
}
