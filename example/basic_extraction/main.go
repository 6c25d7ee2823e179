package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/joeydtaylor/hrvkit/pkg/builder"
)

// Generates two synthetic pulse recordings under a session/subject folder
// layout, then runs the extraction pipeline over them and writes the merged
// RMSSD table as CSV.
func main() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "hrvkit-example")
	if err != nil {
		fmt.Printf("Error creating temp dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	fmt.Println("Writing synthetic recordings...")
	writeRecording(filepath.Join(dir, "baseline", "A042AE", "BVP.csv"), 1.2, 30)
	writeRecording(filepath.Join(dir, "baseline", "B77F01", "BVP.csv"), 1.0, 30)

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))
	defer logger.Flush()

	meter := builder.NewMeter(ctx, builder.MeterWithLogger(logger))
	out := filepath.Join(dir, "results.csv")

	pipe := builder.NewPipeline(ctx,
		builder.PipelineWithResolver(builder.NewSubjectResolver(
			builder.SubjectResolverWithMapping(
				builder.SubjectMapping{FolderSubstring: "A042", SubjectID: "02"},
				builder.SubjectMapping{FolderSubstring: "B77F", SubjectID: "03"},
			),
		)),
		builder.PipelineWithReader(builder.NewRecordingReader()),
		builder.PipelineWithDetector(builder.NewMovingAverageDetector()),
		builder.PipelineWithSink(builder.NewCSVSink(ctx, out, builder.SinkWithLogger(logger))),
		builder.PipelineWithLogger(logger),
		builder.PipelineWithMeter(meter),
	)

	reader := builder.NewRecordingReader()
	paths, err := reader.Discover(filepath.Join(dir, "*", "*", "BVP.csv"))
	if err != nil {
		fmt.Printf("Error discovering recordings: %v\n", err)
		return
	}

	fmt.Printf("Running extraction over %d recordings...\n", len(paths))
	report, err := pipe.Run(ctx, paths)
	if err != nil {
		fmt.Printf("Error running pipeline: %v\n", err)
		return
	}

	fmt.Printf("Processed %d files, produced %d windows, skipped %d windows\n",
		report.FilesProcessed, report.WindowsProduced, report.WindowsSkipped)

	table, err := os.ReadFile(out)
	if err != nil {
		fmt.Printf("Error reading results: %v\n", err)
		return
	}
	fmt.Println("Results table:")
	fmt.Println(string(table))
}

func writeRecording(path string, beatHz float64, seconds int) {
	const rate = 64.0
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Printf("Error creating %s: %v\n", path, err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Printf("Error creating %s: %v\n", path, err)
		return
	}
	defer f.Close()

	fmt.Fprintln(f, "Amplitude,Timestamp")
	n := int(float64(seconds) * rate)
	for i := 0; i < n; i++ {
		ts := 1650000000.0 + float64(i)/rate
		amp := math.Sin(2 * math.Pi * beatHz * float64(i) / rate)
		fmt.Fprintf(f, "%.6f,%.6f\n", amp, ts)
	}
}
