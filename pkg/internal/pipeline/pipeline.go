// Package pipeline orchestrates a full extraction run: resolve each
// recording to its subject, load and band-pass the signal, detect beats,
// slide the analysis window, estimate RMSSD, then merge the surviving
// columns in sorted path order and hand the table to every connected sink.
//
// Per-file failures are recoverable: a recording that cannot be resolved,
// read, or analyzed is dropped from the run and counted, never aborting the
// other files. Only configuration errors and sink failures surface from Run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/joeydtaylor/hrvkit/pkg/internal/hrv"
	"github.com/joeydtaylor/hrvkit/pkg/internal/resultset"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// ErrEmptyFileResult tags a recording whose every window was skipped. The
// file contributes no column and is dropped from the run with a warning.
var ErrEmptyFileResult = errors.New("recording produced no window values")

// Pipeline is the concrete orchestrator behind types.Pipeline.
type Pipeline struct {
	componentMetadata types.ComponentMetadata

	resolver types.SubjectResolver
	reader   types.RecordingReader
	detector types.PeakDetector
	sinks    []types.TableSink

	windowConfig types.WindowConfig
	samplingRate float64
	concurrency  int

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
	meters      []types.Meter
	metersLock  sync.Mutex
}

// NewPipeline creates a pipeline with the reference window configuration
// (320-sample windows overlapping by 288 at 64 Hz) and one worker per CPU.
func NewPipeline(ctx context.Context, options ...types.Option[types.Pipeline]) types.Pipeline {
	p := &Pipeline{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PIPELINE",
		},
		windowConfig: types.WindowConfig{Size: 320, Overlap: 288},
		samplingRate: 64,
		concurrency:  runtime.NumCPU(),
	}
	var iface types.Pipeline = p
	for _, opt := range options {
		opt(iface)
	}
	return p
}

// fileOutcome is one worker's result for a single recording path.
type fileOutcome struct {
	column   *resultset.Column
	produced int
	skipped  int
	err      error
}

// Run processes every path and writes the merged table to the connected
// sinks. Paths are processed concurrently but merged in sorted order, so a
// run over the same inputs always yields the same table.
func (p *Pipeline) Run(ctx context.Context, paths []string) (types.RunReport, error) {
	var report types.RunReport

	if p.resolver == nil || p.reader == nil || p.detector == nil {
		return report, fmt.Errorf("pipeline: resolver, reader and detector must be connected")
	}
	if p.samplingRate <= 0 {
		return report, fmt.Errorf("pipeline: sampling rate must be positive, got %v", p.samplingRate)
	}
	if _, err := hrv.NewWindowSeq(p.windowConfig.Size, p.windowConfig); err != nil {
		return report, fmt.Errorf("pipeline: %w", err)
	}

	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	report.FilesDiscovered = len(sorted)
	for _, s := range p.snapshotSensors() {
		s.InvokeOnRunStart(p.componentMetadata, len(sorted))
	}

	outcomes := make([]fileOutcome, len(sorted))
	workers := p.concurrency
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, path := range sorted {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = p.processFile(ctx, path)
		}(i, path)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return report, err
	}

	columns := make([]*resultset.Column, 0, len(outcomes))
	for i, out := range outcomes {
		report.WindowsProduced += out.produced
		report.WindowsSkipped += out.skipped
		if out.err != nil {
			report.FilesSkipped++
			p.NotifyLoggers(
				types.WarnLevel,
				"Recording dropped from run",
				"component", p.componentMetadata,
				"event", "Run",
				"result", "SKIPPED",
				"recording", sorted[i],
				"error", out.err,
			)
			for _, s := range p.snapshotSensors() {
				s.InvokeOnRecordingSkipped(p.componentMetadata, sorted[i], out.err)
			}
			for _, m := range p.snapshotMeters() {
				m.IncrementCount(types.MetricRecordingSkippedCount)
			}
			continue
		}
		report.FilesProcessed++
		columns = append(columns, out.column)
		for _, s := range p.snapshotSensors() {
			s.InvokeOnRecordingProcessed(p.componentMetadata, sorted[i], out.column.Label(), out.produced)
		}
		for _, m := range p.snapshotMeters() {
			m.IncrementCount(types.MetricRecordingProcessedCount)
			m.AddCount(types.MetricValueEmittedCount, int64(out.produced))
		}
	}

	for _, m := range p.snapshotMeters() {
		m.AddCount(types.MetricWindowProducedCount, int64(report.WindowsProduced))
		m.AddCount(types.MetricWindowSkippedCount, int64(report.WindowsSkipped))
	}

	if len(columns) == 0 {
		report.NothingToSave = true
		p.NotifyLoggers(
			types.WarnLevel,
			"Nothing to save",
			"component", p.componentMetadata,
			"event", "Run",
			"result", "EMPTY",
			"files", report.FilesDiscovered,
		)
		p.finishRun(report)
		return report, nil
	}

	table := resultset.Merge(columns...)
	if empty := table.EmptyLabels(); len(empty) > 0 {
		p.NotifyLoggers(
			types.WarnLevel,
			"Merged table contains empty columns",
			"component", p.componentMetadata,
			"event", "Run",
			"columns", empty,
		)
	}

	var sinkErrs []error
	for _, sink := range p.sinks {
		if err := sink.Write(ctx, table); err != nil {
			sinkErrs = append(sinkErrs, err)
			p.NotifyLoggers(
				types.ErrorLevel,
				"Sink write failed",
				"component", p.componentMetadata,
				"event", "Run",
				"sink", sink.GetComponentMetadata(),
				"error", err,
			)
			continue
		}
		for _, s := range p.snapshotSensors() {
			s.InvokeOnTableSaved(p.componentMetadata, table.Rows(), table.Cols())
		}
	}
	report.OutputWritten = len(p.sinks) > 0 && len(sinkErrs) == 0

	p.finishRun(report)
	if len(sinkErrs) > 0 {
		return report, errors.Join(sinkErrs...)
	}
	return report, nil
}

// finishRun fires the run-complete hooks and meter summaries.
func (p *Pipeline) finishRun(report types.RunReport) {
	for _, s := range p.snapshotSensors() {
		s.InvokeOnRunComplete(p.componentMetadata, report)
		for _, m := range s.GetMeters() {
			m.ReportSummary()
		}
	}
	for _, m := range p.snapshotMeters() {
		m.ReportSummary()
	}
	p.NotifyLoggers(
		types.InfoLevel,
		"Run complete",
		"component", p.componentMetadata,
		"event", "Run",
		"result", "SUCCESS",
		"files_discovered", report.FilesDiscovered,
		"files_processed", report.FilesProcessed,
		"files_skipped", report.FilesSkipped,
		"windows_produced", report.WindowsProduced,
		"windows_skipped", report.WindowsSkipped,
		"nothing_to_save", report.NothingToSave,
		"output_written", report.OutputWritten,
	)
}
