package types

// SkipReason explains why a window produced no RMSSD value. Skips are
// expected and frequent on sparse peak data, so they are surfaced as tagged
// results rather than errors or per-window log lines.
type SkipReason int

const (
	// SkipNone marks a produced result.
	SkipNone SkipReason = iota
	// SkipTooFewPeaks marks a window with fewer than two flagged peaks, from
	// which no inter-beat interval can be formed.
	SkipTooFewPeaks
	// SkipTooFewIntervals marks a window with fewer than two inter-beat
	// intervals, from which no successive difference can be formed.
	SkipTooFewIntervals
)

// String returns a stable identifier for the skip reason.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipTooFewPeaks:
		return "too_few_peaks"
	case SkipTooFewIntervals:
		return "too_few_intervals"
	default:
		return "unknown"
	}
}

// WindowResult is the tagged outcome of estimating one window: either a
// produced RMSSD value (Skip == SkipNone) or a skip with its reason.
type WindowResult struct {
	Value float64    // RMSSD in milliseconds; meaningful only when produced.
	Skip  SkipReason // SkipNone when a value was produced.
}

// Produced reports whether the window yielded an RMSSD value.
func (r WindowResult) Produced() bool {
	return r.Skip == SkipNone
}
