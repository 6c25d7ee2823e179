package hrv

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// Minimum-count policies: fewer than 2 peaks yields no interval, fewer than
// 2 intervals (3 peaks) yields no RMSSD.
const (
	minPeaksForInterval  = 2
	minIntervalsForRMSSD = 2
)

// IntervalMillis converts two adjacent peak timestamps (epoch seconds) to an
// inter-beat interval in milliseconds. Timestamps are rounded to whole
// microseconds before differencing, so intervals are exact multiples of a
// microsecond regardless of float noise below that resolution.
func IntervalMillis(t0, t1 float64) float64 {
	a := time.UnixMicro(int64(math.Round(t0 * 1e6)))
	b := time.UnixMicro(int64(math.Round(t1 * 1e6)))
	return float64(b.Sub(a).Microseconds()) / 1000.0
}

// Intervals derives the consecutive inter-beat intervals, in milliseconds,
// from an ordered peak timestamp sequence. Returns nil when fewer than two
// peaks are present.
func Intervals(peakTimestamps []float64) []float64 {
	if len(peakTimestamps) < minPeaksForInterval {
		return nil
	}
	out := make([]float64, 0, len(peakTimestamps)-1)
	for i := 1; i < len(peakTimestamps); i++ {
		out = append(out, IntervalMillis(peakTimestamps[i-1], peakTimestamps[i]))
	}
	return out
}

// RMSSD computes the root mean square of successive differences of the
// interval sequence. ok is false when fewer than two intervals are present.
// A produced value is always >= 0.
func RMSSD(intervals []float64) (float64, bool) {
	if len(intervals) < minIntervalsForRMSSD {
		return 0, false
	}
	squaredDiffs := make([]float64, 0, len(intervals)-1)
	for i := 1; i < len(intervals); i++ {
		d := intervals[i] - intervals[i-1]
		squaredDiffs = append(squaredDiffs, d*d)
	}
	return math.Sqrt(stat.Mean(squaredDiffs, nil)), true
}

// EstimateWindow applies the full per-window policy to one peak timestamp
// sequence: a produced RMSSD value, or a tagged skip when the window holds
// too few peaks or intervals.
func EstimateWindow(peakTimestamps []float64) types.WindowResult {
	intervals := Intervals(peakTimestamps)
	if intervals == nil {
		return types.WindowResult{Skip: types.SkipTooFewPeaks}
	}
	value, ok := RMSSD(intervals)
	if !ok {
		return types.WindowResult{Skip: types.SkipTooFewIntervals}
	}
	return types.WindowResult{Value: value}
}
