package pipeline_test

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeydtaylor/hrvkit/pkg/internal/detector"
	"github.com/joeydtaylor/hrvkit/pkg/internal/meter"
	"github.com/joeydtaylor/hrvkit/pkg/internal/pipeline"
	"github.com/joeydtaylor/hrvkit/pkg/internal/recording"
	"github.com/joeydtaylor/hrvkit/pkg/internal/sensor"
	"github.com/joeydtaylor/hrvkit/pkg/internal/sink"
	"github.com/joeydtaylor/hrvkit/pkg/internal/subject"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

const testRate = 64.0

// writeRecording writes a synthetic pulse recording: a sinusoid at beatHz
// sampled at testRate for seconds, with epoch-second timestamps.
func writeRecording(t *testing.T, path string, beatHz float64, seconds float64) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	var b strings.Builder
	b.WriteString("Amplitude,Timestamp\n")
	n := int(seconds * testRate)
	for i := 0; i < n; i++ {
		ts := 1650000000.0 + float64(i)/testRate
		amp := math.Sin(2 * math.Pi * beatHz * float64(i) / testRate)
		fmt.Fprintf(&b, "%.6f,%.6f\n", amp, ts)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func newResolver() types.SubjectResolver {
	return subject.NewResolver(
		subject.WithMapping(
			types.SubjectMapping{FolderSubstring: "A042", SubjectID: "02"},
			types.SubjectMapping{FolderSubstring: "B77F", SubjectID: "03"},
		),
	)
}

func newPipeline(out string, extra ...types.Option[types.Pipeline]) types.Pipeline {
	options := []types.Option[types.Pipeline]{
		pipeline.WithResolver(newResolver()),
		pipeline.WithReader(recording.NewReader()),
		pipeline.WithDetector(detector.NewMovingAverage()),
		pipeline.WithSamplingRate(testRate),
		pipeline.WithWindowConfig(types.WindowConfig{Size: 320, Overlap: 288}),
	}
	if out != "" {
		options = append(options, pipeline.WithSink(sink.NewCSVSink(context.Background(), out)))
	}
	options = append(options, extra...)
	return pipeline.NewPipeline(context.Background(), options...)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	fileA := filepath.Join(dir, "session1", "A042AE", "BVP.csv")
	fileB := filepath.Join(dir, "session2", "B77F01", "BVP.csv")
	writeRecording(t, fileA, 1.2, 20)
	writeRecording(t, fileB, 1.0, 20)

	out := filepath.Join(dir, "results.csv")
	m := meter.NewMeter(context.Background())
	p := newPipeline(out, pipeline.WithMeter(m))

	report, err := p.Run(context.Background(), []string{fileB, fileA})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.FilesDiscovered != 2 || report.FilesProcessed != 2 || report.FilesSkipped != 0 {
		t.Errorf("report = %+v", report)
	}
	if report.NothingToSave || !report.OutputWritten {
		t.Errorf("expected written output, report = %+v", report)
	}
	if report.WindowsProduced == 0 {
		t.Error("expected produced windows")
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	// Columns follow sorted path order, not submission order.
	if lines[0] != "session1_02,session2_03" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) < 2 {
		t.Fatal("expected at least one data row")
	}

	if got := m.GetCount(types.MetricRecordingProcessedCount); got != 2 {
		t.Errorf("processed count = %d, want 2", got)
	}
	if got := m.GetCount(types.MetricWindowProducedCount); got != int64(report.WindowsProduced) {
		t.Errorf("window produced count = %d, want %d", got, report.WindowsProduced)
	}
}

func TestRun_SkipsUnmappedSubject(t *testing.T) {
	dir := t.TempDir()
	mapped := filepath.Join(dir, "s1", "A042AE", "BVP.csv")
	unmapped := filepath.Join(dir, "s1", "ZZZZZZ", "BVP.csv")
	writeRecording(t, mapped, 1.2, 20)
	writeRecording(t, unmapped, 1.2, 20)

	out := filepath.Join(dir, "results.csv")
	p := newPipeline(out)

	report, err := p.Run(context.Background(), []string{mapped, unmapped})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.FilesProcessed != 1 || report.FilesSkipped != 1 {
		t.Errorf("report = %+v", report)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "s1_02\n") {
		t.Errorf("header = %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestRun_NothingToSave(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "results.csv")
	p := newPipeline(out)

	report, err := p.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.NothingToSave || report.OutputWritten {
		t.Errorf("report = %+v", report)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output file expected when there is nothing to save")
	}
}

func TestRun_EmptyFileResultDropsColumn(t *testing.T) {
	dir := t.TempDir()
	// Too short for a single 320-sample window.
	short := filepath.Join(dir, "s1", "A042AE", "BVP.csv")
	writeRecording(t, short, 1.2, 2)

	out := filepath.Join(dir, "results.csv")
	p := newPipeline(out)

	report, err := p.Run(context.Background(), []string{short})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.FilesSkipped != 1 || !report.NothingToSave {
		t.Errorf("report = %+v", report)
	}
}

func TestRun_DeterministicAcrossConcurrency(t *testing.T) {
	dir := t.TempDir()
	for i, folder := range []string{"A042AE", "B77F01"} {
		for _, session := range []string{"s1", "s2"} {
			path := filepath.Join(dir, session, folder, "BVP.csv")
			writeRecording(t, path, 1.0+0.2*float64(i), 15)
		}
	}
	paths, err := recording.NewReader().Discover(filepath.Join(dir, "*", "*", "BVP.csv"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("discovered %d paths, want 4", len(paths))
	}

	outSeq := filepath.Join(dir, "seq.csv")
	outPar := filepath.Join(dir, "par.csv")
	if _, err := newPipeline(outSeq, pipeline.WithConcurrency(1)).Run(context.Background(), paths); err != nil {
		t.Fatalf("sequential run: %v", err)
	}
	if _, err := newPipeline(outPar, pipeline.WithConcurrency(4)).Run(context.Background(), paths); err != nil {
		t.Fatalf("concurrent run: %v", err)
	}

	seq, err := os.ReadFile(outSeq)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	par, err := os.ReadFile(outPar)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(seq) != string(par) {
		t.Error("concurrent output differs from sequential output")
	}
}

func TestRun_SensorObservesRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s1", "A042AE", "BVP.csv")
	writeRecording(t, path, 1.2, 20)

	var started, processed int
	var completed types.RunReport
	s := sensor.NewSensor(context.Background(),
		sensor.WithOnRecordingStart(func(cm types.ComponentMetadata, p string) { started++ }),
		sensor.WithOnRecordingProcessed(func(cm types.ComponentMetadata, p, label string, produced int) { processed++ }),
		sensor.WithOnRunComplete(func(cm types.ComponentMetadata, r types.RunReport) { completed = r }),
	)

	p := newPipeline(filepath.Join(dir, "results.csv"), pipeline.WithSensor(s), pipeline.WithConcurrency(1))
	report, err := p.Run(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if started != 1 || processed != 1 {
		t.Errorf("sensor saw started=%d processed=%d, want 1/1", started, processed)
	}
	if completed != report {
		t.Errorf("run-complete report %+v != returned report %+v", completed, report)
	}
}

func TestRun_RequiresComponents(t *testing.T) {
	p := pipeline.NewPipeline(context.Background())
	if _, err := p.Run(context.Background(), nil); err == nil {
		t.Error("expected error when resolver, reader and detector are missing")
	}
}

func TestRun_RejectsBadWindowConfig(t *testing.T) {
	p := newPipeline("", pipeline.WithWindowConfig(types.WindowConfig{Size: 100, Overlap: 100}))
	if _, err := p.Run(context.Background(), nil); err == nil {
		t.Error("expected error for overlap equal to window size")
	}
}
