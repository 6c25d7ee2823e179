package sink

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Algorithm selects the output compression applied by file-based sinks.
type Algorithm string

const (
	CompressNone   Algorithm = "none"
	CompressGzip   Algorithm = "gzip"
	CompressZstd   Algorithm = "zstd"
	CompressSnappy Algorithm = "snappy"
	CompressLz4    Algorithm = "lz4"
	CompressBrotli Algorithm = "brotli"
)

// ParseAlgorithm maps a string to an Algorithm; empty means none.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case "", CompressNone:
		return CompressNone, nil
	case CompressGzip, CompressZstd, CompressSnappy, CompressLz4, CompressBrotli:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("unsupported compression algorithm: %q", s)
	}
}

// Ext returns the filename extension appended for the algorithm.
func (a Algorithm) Ext() string {
	switch a {
	case CompressGzip:
		return ".gz"
	case CompressZstd:
		return ".zst"
	case CompressSnappy:
		return ".sz"
	case CompressLz4:
		return ".lz4"
	case CompressBrotli:
		return ".br"
	default:
		return ""
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// newCompressor wraps w with the algorithm's stream writer. Closing the
// returned writer flushes the compressed stream but not the underlying writer.
func newCompressor(w io.Writer, a Algorithm) (io.WriteCloser, error) {
	switch a {
	case CompressNone:
		return nopWriteCloser{w}, nil
	case CompressGzip:
		return gzip.NewWriter(w), nil
	case CompressZstd:
		return zstd.NewWriter(w)
	case CompressSnappy:
		return snappy.NewBufferedWriter(w), nil
	case CompressLz4:
		return lz4.NewWriter(w), nil
	case CompressBrotli:
		return brotli.NewWriterLevel(w, brotli.BestCompression), nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %q", a)
	}
}
