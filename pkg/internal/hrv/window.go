// Package hrv holds the windowed heart-rate-variability computations: sliding
// window partitioning, peak timestamp extraction, inter-beat interval
// derivation, and RMSSD estimation. Everything here is pure computation over
// in-memory slices so each piece is testable with synthetic data.
package hrv

import (
	"fmt"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// Window is one contiguous index range [Start, End) over a sample sequence.
type Window struct {
	Start int
	End   int
}

// WindowSeq is a finite, restartable sequence of fixed-size overlapping
// windows over a sample sequence of length n: starts at 0, advances by
// stride = size - overlap, and stops when fewer than size samples remain.
// The trailing remainder is dropped.
type WindowSeq struct {
	n      int
	size   int
	stride int
}

// NewWindowSeq validates the window configuration against a sequence length.
// A zero-count sequence (n < size) is valid; invalid size/overlap is not.
func NewWindowSeq(n int, cfg types.WindowConfig) (WindowSeq, error) {
	if cfg.Size <= 0 {
		return WindowSeq{}, fmt.Errorf("window size must be positive, got %d", cfg.Size)
	}
	if cfg.Overlap < 0 || cfg.Overlap >= cfg.Size {
		return WindowSeq{}, fmt.Errorf("overlap must satisfy 0 <= overlap < size, got overlap=%d size=%d", cfg.Overlap, cfg.Size)
	}
	return WindowSeq{n: n, size: cfg.Size, stride: cfg.Stride()}, nil
}

// Count returns the number of windows the sequence yields.
func (s WindowSeq) Count() int {
	if s.n < s.size {
		return 0
	}
	return (s.n-s.size)/s.stride + 1
}

// At returns the i-th window. i must be in [0, Count()).
func (s WindowSeq) At(i int) Window {
	start := i * s.stride
	return Window{Start: start, End: start + s.size}
}

// Cursor returns a restartable iterator over the sequence.
func (s WindowSeq) Cursor() *Cursor {
	return &Cursor{seq: s}
}

// Cursor walks a WindowSeq in index order. Multiple cursors over the same
// sequence are independent; no state carries across windows.
type Cursor struct {
	seq  WindowSeq
	next int
}

// Next returns the next window, or ok=false when the sequence is exhausted.
func (c *Cursor) Next() (Window, bool) {
	if c.next >= c.seq.Count() {
		return Window{}, false
	}
	w := c.seq.At(c.next)
	c.next++
	return w, true
}

// Reset rewinds the cursor to the first window.
func (c *Cursor) Reset() {
	c.next = 0
}

// PeakTimestamps extracts the timestamps of flagged samples within one
// window, preserving source order. flags and timestamps are aligned 1:1.
func PeakTimestamps(flags []bool, timestamps []float64, w Window) []float64 {
	var out []float64
	for i := w.Start; i < w.End; i++ {
		if flags[i] {
			out = append(out, timestamps[i])
		}
	}
	return out
}
