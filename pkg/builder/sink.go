package builder

import (
	"context"
	"time"

	s3api "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/hrvkit/pkg/internal/sink"
	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

type TableSink = types.TableSink

type CompressionAlgorithm = sink.Algorithm

const (
	CompressNone   CompressionAlgorithm = sink.CompressNone
	CompressGzip   CompressionAlgorithm = sink.CompressGzip
	CompressZstd   CompressionAlgorithm = sink.CompressZstd
	CompressSnappy CompressionAlgorithm = sink.CompressSnappy
	CompressLz4    CompressionAlgorithm = sink.CompressLz4
	CompressBrotli CompressionAlgorithm = sink.CompressBrotli
)

// ParseCompressionAlgorithm maps a string to a compression algorithm.
func ParseCompressionAlgorithm(s string) (CompressionAlgorithm, error) {
	return sink.ParseAlgorithm(s)
}

// NewCSVSink creates a delimited table sink writing to path.
func NewCSVSink(ctx context.Context, path string, options ...types.Option[types.TableSink]) types.TableSink {
	return sink.NewCSVSink(ctx, path, options...)
}

// NewExcelSink creates an xlsx table sink writing to path.
func NewExcelSink(ctx context.Context, path string, options ...types.Option[types.TableSink]) types.TableSink {
	return sink.NewExcelSink(ctx, path, options...)
}

// NewParquetSink creates a long-format parquet table sink writing to path.
func NewParquetSink(ctx context.Context, path string, options ...types.Option[types.TableSink]) types.TableSink {
	return sink.NewParquetSink(ctx, path, options...)
}

// NewS3Sink creates a table sink uploading rendered CSV to an S3 bucket.
func NewS3Sink(ctx context.Context, bucket string, keyPrefix string, options ...types.Option[types.TableSink]) types.TableSink {
	return sink.NewS3Sink(ctx, bucket, keyPrefix, options...)
}

// NewS3Client builds an S3 client from the default credential chain, with
// optional custom endpoint and static credentials.
func NewS3Client(ctx context.Context, region string, endpoint string, accessKey string, secretKey string) (*s3api.Client, error) {
	return sink.NewAWSClient(ctx, region, endpoint, accessKey, secretKey)
}

// SinkWithComma sets the field delimiter for delimited sinks.
func SinkWithComma(comma rune) types.Option[types.TableSink] {
	return sink.WithComma(comma)
}

// SinkWithCompression sets the output compression algorithm.
func SinkWithCompression(algorithm CompressionAlgorithm) types.Option[types.TableSink] {
	return sink.WithCompression(algorithm)
}

// SinkWithSheet sets the worksheet name used by the Excel sink.
func SinkWithSheet(name string) types.Option[types.TableSink] {
	return sink.WithSheet(name)
}

// SinkWithS3Client injects the AWS client used by the S3 sink.
func SinkWithS3Client(cli *s3api.Client) types.Option[types.TableSink] {
	return sink.WithS3Client(cli)
}

// SinkWithServerSideEncryption configures SSE for S3 uploads.
func SinkWithServerSideEncryption(mode string, kmsKey string) types.Option[types.TableSink] {
	return sink.WithServerSideEncryption(mode, kmsKey)
}

// SinkWithClock overrides the S3 sink's timestamp source for object keys.
func SinkWithClock(now func() time.Time) types.Option[types.TableSink] {
	return sink.WithClock(now)
}

// SinkWithLogger attaches loggers to a sink.
func SinkWithLogger(loggers ...types.Logger) types.Option[types.TableSink] {
	return sink.WithSinkLogger(loggers...)
}
