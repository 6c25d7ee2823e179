// Command hrvkit extracts windowed RMSSD heart-rate-variability values from
// PPG/BVP recordings and aggregates them into a wide results table.
//
// Recordings are discovered with a glob pattern whose directory layout
// encodes the session (grandparent directory) and subject folder (parent
// directory). The subject folder is resolved to a subject id through an
// ordered substring mapping supplied with -subjects.
//
// Example:
//
//	hrvkit -input 'data/*/*/BVP.csv' -subjects 'A042=02,B77F=03' -out results.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joeydtaylor/hrvkit/pkg/builder"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		input       = flag.String("input", "", "glob pattern matching recording files (required)")
		out         = flag.String("out", "results.csv", "output path for the results table")
		format      = flag.String("format", "csv", "output format: csv, xlsx or parquet")
		compress    = flag.String("compress", "none", "output compression: none, gzip, zstd, snappy, lz4 or brotli")
		subjects    = flag.String("subjects", "", "ordered subject mapping, e.g. 'A042=02,B77F=03' (required)")
		windowSize  = flag.Int("window", 320, "window size in samples")
		overlap     = flag.Int("overlap", 288, "window overlap in samples")
		rate        = flag.Float64("rate", 64, "sampling rate in Hz")
		concurrency = flag.Int("concurrency", 0, "concurrent file workers (0 = one per CPU)")
		logLevel    = flag.String("log-level", "info", "log level: debug, info, warn or error")
		s3Bucket    = flag.String("s3-bucket", "", "also upload the rendered CSV to this S3 bucket")
		s3Prefix    = flag.String("s3-prefix", "hrv", "key prefix for S3 uploads")
		s3Region    = flag.String("s3-region", "us-east-1", "AWS region for S3 uploads")
		s3Endpoint  = flag.String("s3-endpoint", "", "custom S3 endpoint (enables path-style addressing)")
		s3SSE       = flag.String("s3-sse", "", "server-side encryption mode: AES256 or aws:kms")
		s3KMSKey    = flag.String("s3-kms-key", "", "KMS key id for aws:kms encryption")
	)
	flag.Parse()

	if *input == "" || *subjects == "" {
		fmt.Fprintln(os.Stderr, "hrvkit: -input and -subjects are required")
		flag.Usage()
		return 2
	}

	mappings, err := parseSubjects(*subjects)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hrvkit: %v\n", err)
		return 2
	}
	algorithm, err := builder.ParseCompressionAlgorithm(*compress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hrvkit: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := builder.NewLogger(builder.LoggerWithLevel(*logLevel))
	defer logger.Flush()

	var sinks []builder.TableSink
	switch strings.ToLower(*format) {
	case "csv":
		sinks = append(sinks, builder.NewCSVSink(ctx, *out,
			builder.SinkWithCompression(algorithm),
			builder.SinkWithLogger(logger),
		))
	case "xlsx":
		sinks = append(sinks, builder.NewExcelSink(ctx, *out,
			builder.SinkWithLogger(logger),
		))
	case "parquet":
		sinks = append(sinks, builder.NewParquetSink(ctx, *out,
			builder.SinkWithCompression(algorithm),
			builder.SinkWithLogger(logger),
		))
	default:
		fmt.Fprintf(os.Stderr, "hrvkit: unsupported format %q\n", *format)
		return 2
	}

	if *s3Bucket != "" {
		cli, err := builder.NewS3Client(ctx, *s3Region, *s3Endpoint,
			os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "hrvkit: %v\n", err)
			return 1
		}
		sinks = append(sinks, builder.NewS3Sink(ctx, *s3Bucket, *s3Prefix,
			builder.SinkWithS3Client(cli),
			builder.SinkWithServerSideEncryption(*s3SSE, *s3KMSKey),
			builder.SinkWithLogger(logger),
		))
	}

	meter := builder.NewMeter(ctx, builder.MeterWithLogger(logger))
	sensor := builder.NewSensor(ctx, builder.SensorWithLogger(logger))

	reader := builder.NewRecordingReader(builder.RecordingReaderWithLogger(logger))
	pipe := builder.NewPipeline(ctx,
		builder.PipelineWithResolver(builder.NewSubjectResolver(
			builder.SubjectResolverWithMapping(mappings...),
			builder.SubjectResolverWithLogger(logger),
		)),
		builder.PipelineWithReader(reader),
		builder.PipelineWithDetector(builder.NewMovingAverageDetector(
			builder.DetectorWithLogger(logger),
		)),
		builder.PipelineWithSink(sinks...),
		builder.PipelineWithLogger(logger),
		builder.PipelineWithSensor(sensor),
		builder.PipelineWithMeter(meter),
		builder.PipelineWithWindowConfig(builder.WindowConfig{Size: *windowSize, Overlap: *overlap}),
		builder.PipelineWithSamplingRate(*rate),
		builder.PipelineWithConcurrency(*concurrency),
	)

	paths, err := reader.Discover(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hrvkit: %v\n", err)
		return 1
	}

	report, err := pipe.Run(ctx, paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hrvkit: %v\n", err)
		return 1
	}
	if report.NothingToSave {
		fmt.Fprintln(os.Stderr, "hrvkit: nothing to save")
	}
	return 0
}

// parseSubjects parses the ordered 'substring=id,substring=id' mapping flag.
func parseSubjects(raw string) ([]builder.SubjectMapping, error) {
	var mappings []builder.SubjectMapping
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		substr, id, ok := strings.Cut(entry, "=")
		if !ok || substr == "" || id == "" {
			return nil, fmt.Errorf("bad subject mapping entry %q, want 'substring=id'", entry)
		}
		mappings = append(mappings, builder.SubjectMapping{
			FolderSubstring: strings.TrimSpace(substr),
			SubjectID:       strings.TrimSpace(id),
		})
	}
	if len(mappings) == 0 {
		return nil, fmt.Errorf("subject mapping is empty")
	}
	return mappings, nil
}
