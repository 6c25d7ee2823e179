package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/joeydtaylor/hrvkit/pkg/builder"
)

// Runs the extraction pipeline and uploads the gzip-compressed CSV table to
// a local MinIO bucket alongside the file sink. Expects MinIO on :9000 with
// the test/test credentials and an existing hrv-results bucket.
func main() {
	ctx := context.Background()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))
	defer logger.Flush()

	cli, err := builder.NewS3Client(ctx, "us-east-1", "http://127.0.0.1:9000", "test", "test")
	if err != nil {
		fmt.Printf("Error building S3 client: %v\n", err)
		return
	}

	pipe := builder.NewPipeline(ctx,
		builder.PipelineWithResolver(builder.NewSubjectResolver(
			builder.SubjectResolverWithMapping(
				builder.SubjectMapping{FolderSubstring: "A042", SubjectID: "02"},
			),
		)),
		builder.PipelineWithReader(builder.NewRecordingReader()),
		builder.PipelineWithDetector(builder.NewMovingAverageDetector()),
		builder.PipelineWithSink(
			builder.NewCSVSink(ctx, "results.csv", builder.SinkWithLogger(logger)),
			builder.NewS3Sink(ctx, "hrv-results", "exports",
				builder.SinkWithS3Client(cli),
				builder.SinkWithCompression(builder.CompressGzip),
				builder.SinkWithServerSideEncryption("AES256", ""),
				builder.SinkWithLogger(logger),
			),
		),
		builder.PipelineWithLogger(logger),
	)

	reader := builder.NewRecordingReader()
	paths, err := reader.Discover(filepath.Join("data", "*", "*", "BVP.csv"))
	if err != nil {
		fmt.Printf("Error discovering recordings: %v\n", err)
		return
	}

	report, err := pipe.Run(ctx, paths)
	if err != nil {
		fmt.Printf("Error running pipeline: %v\n", err)
		return
	}
	fmt.Printf("Processed %d files, output written: %v\n", report.FilesProcessed, report.OutputWritten)
}
