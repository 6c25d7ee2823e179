package hrv_test

import (
	"testing"

	"github.com/joeydtaylor/hrvkit/pkg/internal/hrv"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

func TestWindowSeq_ReferenceConfig(t *testing.T) {
	// 320-sample windows at 90% overlap advance by 32 samples.
	seq, err := hrv.NewWindowSeq(1000, types.WindowConfig{Size: 320, Overlap: 288})
	if err != nil {
		t.Fatalf("NewWindowSeq() error: %v", err)
	}

	// Starts 0, 32, ..., 672; 704+320 > 1000 so the remainder is dropped.
	if got := seq.Count(); got != 22 {
		t.Fatalf("expected 22 windows, got %d", got)
	}
	first := seq.At(0)
	if first.Start != 0 || first.End != 320 {
		t.Errorf("unexpected first window: %+v", first)
	}
	last := seq.At(seq.Count() - 1)
	if last.Start != 672 || last.End != 992 {
		t.Errorf("unexpected last window: %+v", last)
	}
}

func TestWindowSeq_ExactFit(t *testing.T) {
	seq, err := hrv.NewWindowSeq(320, types.WindowConfig{Size: 320, Overlap: 288})
	if err != nil {
		t.Fatalf("NewWindowSeq() error: %v", err)
	}
	if got := seq.Count(); got != 1 {
		t.Fatalf("expected exactly 1 window, got %d", got)
	}
}

func TestWindowSeq_TooShort(t *testing.T) {
	seq, err := hrv.NewWindowSeq(319, types.WindowConfig{Size: 320, Overlap: 288})
	if err != nil {
		t.Fatalf("NewWindowSeq() error: %v", err)
	}
	if got := seq.Count(); got != 0 {
		t.Fatalf("expected 0 windows, got %d", got)
	}
}

func TestWindowSeq_RejectsBadConfig(t *testing.T) {
	cases := []types.WindowConfig{
		{Size: 0, Overlap: 0},
		{Size: -1, Overlap: 0},
		{Size: 320, Overlap: 320},
		{Size: 320, Overlap: -1},
	}
	for _, cfg := range cases {
		if _, err := hrv.NewWindowSeq(1000, cfg); err == nil {
			t.Errorf("expected error for config %+v", cfg)
		}
	}
}

func TestCursor_RestartableIteration(t *testing.T) {
	seq, err := hrv.NewWindowSeq(100, types.WindowConfig{Size: 40, Overlap: 20})
	if err != nil {
		t.Fatalf("NewWindowSeq() error: %v", err)
	}

	collect := func(c *hrv.Cursor) []hrv.Window {
		var out []hrv.Window
		for {
			w, ok := c.Next()
			if !ok {
				break
			}
			out = append(out, w)
		}
		return out
	}

	c := seq.Cursor()
	first := collect(c)
	if len(first) != seq.Count() {
		t.Fatalf("expected %d windows, got %d", seq.Count(), len(first))
	}

	c.Reset()
	second := collect(c)
	if len(second) != len(first) {
		t.Fatalf("cursor not restartable: %d vs %d windows", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("window %d differs across iterations: %+v vs %+v", i, first[i], second[i])
		}
	}

	// Independent cursors do not share state.
	other := seq.Cursor()
	w, ok := other.Next()
	if !ok || w.Start != 0 {
		t.Fatalf("fresh cursor should start at 0, got %+v ok=%v", w, ok)
	}
}

func TestPeakTimestamps(t *testing.T) {
	flags := []bool{true, false, true, true, false, true}
	ts := []float64{10, 11, 12, 13, 14, 15}

	got := hrv.PeakTimestamps(flags, ts, hrv.Window{Start: 1, End: 5})
	want := []float64{12, 13}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPeakTimestamps_NoPeaks(t *testing.T) {
	flags := make([]bool, 10)
	ts := make([]float64, 10)
	if got := hrv.PeakTimestamps(flags, ts, hrv.Window{Start: 0, End: 10}); len(got) != 0 {
		t.Fatalf("expected no peak timestamps, got %v", got)
	}
}
