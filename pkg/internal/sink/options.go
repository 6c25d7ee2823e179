package sink

import (
	"time"

	s3api "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
)

// WithComma sets the field delimiter for delimited sinks.
func WithComma(comma rune) types.Option[types.TableSink] {
	return func(s types.TableSink) {
		switch v := s.(type) {
		case *CSVSink:
			v.comma = comma
		case *S3Sink:
			v.comma = comma
		}
	}
}

// WithCompression sets the output compression algorithm. The CSV sink
// supports every algorithm; the parquet sink supports none, snappy, gzip
// and zstd; the Excel sink ignores it (xlsx is already a zip container).
func WithCompression(algorithm Algorithm) types.Option[types.TableSink] {
	return func(s types.TableSink) {
		switch v := s.(type) {
		case *CSVSink:
			v.compression = algorithm
		case *ParquetSink:
			v.compression = algorithm
		case *S3Sink:
			v.compression = algorithm
		}
	}
}

// WithSheet sets the worksheet name used by the Excel sink.
func WithSheet(name string) types.Option[types.TableSink] {
	return func(s types.TableSink) {
		if v, ok := s.(*ExcelSink); ok && name != "" {
			v.sheet = name
		}
	}
}

// WithS3Client injects the AWS client used by the S3 sink.
func WithS3Client(cli *s3api.Client) types.Option[types.TableSink] {
	return func(s types.TableSink) {
		if v, ok := s.(*S3Sink); ok {
			v.cli = cli
		}
	}
}

// WithServerSideEncryption configures SSE for uploads: mode is "AES256" or
// "aws:kms"; kmsKey applies only to the kms mode.
func WithServerSideEncryption(mode string, kmsKey string) types.Option[types.TableSink] {
	return func(s types.TableSink) {
		if v, ok := s.(*S3Sink); ok {
			v.sseMode = mode
			v.kmsKey = kmsKey
		}
	}
}

// WithClock overrides the S3 sink's timestamp source for object keys.
func WithClock(now func() time.Time) types.Option[types.TableSink] {
	return func(s types.TableSink) {
		if v, ok := s.(*S3Sink); ok && now != nil {
			v.now = now
		}
	}
}

// WithSinkLogger attaches one or more loggers to the sink.
func WithSinkLogger(loggers ...types.Logger) types.Option[types.TableSink] {
	return func(s types.TableSink) {
		s.ConnectLogger(loggers...)
	}
}

// WithSinkComponentMetadata overrides the sink's name and id.
func WithSinkComponentMetadata(name string, id string) types.Option[types.TableSink] {
	return func(s types.TableSink) {
		s.SetComponentMetadata(name, id)
	}
}
