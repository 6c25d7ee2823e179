package builder_test

import (
	"context"
	"testing"

	"github.com/joeydtaylor/hrvkit/pkg/builder"
)

func TestBuilderAssemblesPipeline(t *testing.T) {
	ctx := context.Background()

	logger := builder.NewLogger(builder.LoggerWithLevel("error"))
	m := builder.NewMeter(ctx)
	s := builder.NewSensor(ctx, builder.SensorWithMeter(m))

	p := builder.NewPipeline(ctx,
		builder.PipelineWithResolver(builder.NewSubjectResolver(
			builder.SubjectResolverWithMapping(builder.SubjectMapping{FolderSubstring: "A042", SubjectID: "02"}),
		)),
		builder.PipelineWithReader(builder.NewRecordingReader()),
		builder.PipelineWithDetector(builder.NewMovingAverageDetector()),
		builder.PipelineWithLogger(logger),
		builder.PipelineWithSensor(s),
		builder.PipelineWithConcurrency(2),
	)

	report, err := p.Run(ctx, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !report.NothingToSave {
		t.Errorf("expected NothingToSave for an empty path list, report = %+v", report)
	}
}

func TestRMSSDReexport(t *testing.T) {
	value, ok := builder.RMSSD([]float64{1000, 1000, 1000})
	if !ok || value != 0 {
		t.Errorf("RMSSD = (%v, %v), want (0, true)", value, ok)
	}
	if _, ok := builder.RMSSD([]float64{1000}); ok {
		t.Error("RMSSD of one interval should not produce a value")
	}
}

func TestParseCompressionAlgorithm(t *testing.T) {
	if _, err := builder.ParseCompressionAlgorithm("zstd"); err != nil {
		t.Errorf("ParseCompressionAlgorithm(zstd): %v", err)
	}
	if _, err := builder.ParseCompressionAlgorithm("bogus"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}
