package pipeline

import (
	"context"
	"fmt"

	"github.com/joeydtaylor/hrvkit/pkg/internal/hrv"
	"github.com/joeydtaylor/hrvkit/pkg/internal/resultset"
)

// processFile runs the per-recording flow: resolve, read, detect, window,
// estimate. Any failure yields an outcome with err set; the run continues
// with the other files.
func (p *Pipeline) processFile(ctx context.Context, path string) fileOutcome {
	for _, s := range p.snapshotSensors() {
		s.InvokeOnRecordingStart(p.componentMetadata, path)
	}

	key, err := p.resolver.Resolve(path)
	if err != nil {
		return fileOutcome{err: err}
	}
	label := key.Label()

	rec, err := p.reader.Read(ctx, path)
	if err != nil {
		return fileOutcome{err: err}
	}

	flags, err := p.detector.Detect(rec.Amplitude, p.samplingRate)
	if err != nil {
		return fileOutcome{err: fmt.Errorf("detect %s: %w", path, err)}
	}

	seq, err := hrv.NewWindowSeq(rec.Len(), p.windowConfig)
	if err != nil {
		return fileOutcome{err: fmt.Errorf("window %s: %w", path, err)}
	}

	column := resultset.NewColumn(label)
	var out fileOutcome
	cursor := seq.Cursor()
	for {
		w, ok := cursor.Next()
		if !ok {
			break
		}
		peaks := hrv.PeakTimestamps(flags, rec.Timestamp, w)
		result := hrv.EstimateWindow(peaks)
		if result.Produced() {
			column.Append(result.Value)
			out.produced++
			for _, s := range p.snapshotSensors() {
				s.InvokeOnWindowProduced(p.componentMetadata, label, result.Value)
			}
		} else {
			out.skipped++
			for _, s := range p.snapshotSensors() {
				s.InvokeOnWindowSkipped(p.componentMetadata, label, result.Skip)
			}
		}
	}

	if out.produced == 0 {
		return fileOutcome{skipped: out.skipped, err: fmt.Errorf("%w: %s", ErrEmptyFileResult, path)}
	}
	out.column = column
	return out
}
