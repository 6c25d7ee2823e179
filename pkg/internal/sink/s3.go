package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3api "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/joeydtaylor/hrvkit/pkg/internal/types"
	"github.com/joeydtaylor/hrvkit/pkg/internal/utils"
)

// S3Sink renders a result table as delimited text and uploads it to an S3
// bucket. The object key is the configured key prefix plus a UTC timestamp
// and the compression extension.
type S3Sink struct {
	component
	cli         *s3api.Client
	bucket      string
	keyPrefix   string
	comma       rune
	compression Algorithm
	sseMode     string // "" | "AES256" | "aws:kms"
	kmsKey      string
	now         func() time.Time
}

// NewS3Sink creates an S3 table sink uploading to bucket under keyPrefix.
func NewS3Sink(ctx context.Context, bucket string, keyPrefix string, options ...types.Option[types.TableSink]) types.TableSink {
	s := &S3Sink{
		bucket:      strings.TrimSpace(bucket),
		keyPrefix:   strings.TrimLeft(keyPrefix, "/"),
		comma:       ',',
		compression: CompressGzip,
		now:         time.Now,
	}
	s.componentMetadata = types.ComponentMetadata{
		ID:   utils.GenerateUniqueHash(),
		Type: "S3_SINK",
	}
	var iface types.TableSink = s
	for _, opt := range options {
		opt(iface)
	}
	return s
}

// NewAWSClient builds an S3 client from the default credential chain. When
// endpoint is non-empty the client targets it with path-style addressing,
// which is what MinIO and localstack expect.
func NewAWSClient(ctx context.Context, region string, endpoint string, accessKey string, secretKey string) (*s3api.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" {
		loadOpts = append(loadOpts,
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3api.NewFromConfig(cfg, func(o *s3api.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *S3Sink) objectKey(now time.Time) string {
	name := fmt.Sprintf("rmssd-%s.csv%s", now.UTC().Format("20060102T150405Z"), s.compression.Ext())
	if s.keyPrefix == "" {
		return name
	}
	return strings.TrimRight(s.keyPrefix, "/") + "/" + name
}

// Write renders the table, compresses it, and uploads the object.
func (s *S3Sink) Write(ctx context.Context, table types.ResultTable) error {
	if s.cli == nil {
		return fmt.Errorf("s3 sink: no client configured")
	}
	if s.bucket == "" {
		return fmt.Errorf("s3 sink: no bucket configured")
	}
	if table.Cols() == 0 {
		return fmt.Errorf("s3 sink: empty table")
	}
	data, err := RenderDelimited(table, s.comma)
	if err != nil {
		return fmt.Errorf("s3 sink: render: %w", err)
	}

	var body bytes.Buffer
	cw, err := newCompressor(&body, s.compression)
	if err != nil {
		return fmt.Errorf("s3 sink: %w", err)
	}
	if _, err := cw.Write(data); err != nil {
		cw.Close()
		return fmt.Errorf("s3 sink: compress: %w", err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("s3 sink: compress: %w", err)
	}

	key := s.objectKey(s.now())
	put := &s3api.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body.Bytes()),
		ContentType: aws.String("text/csv"),
	}
	if s.compression == CompressGzip {
		put.ContentEncoding = aws.String("gzip")
	}
	switch strings.ToLower(s.sseMode) {
	case "aes256":
		put.ServerSideEncryption = s3types.ServerSideEncryptionAes256
	case "aws:kms":
		put.ServerSideEncryption = s3types.ServerSideEncryptionAwsKms
		if s.kmsKey != "" {
			put.SSEKMSKeyId = &s.kmsKey
		}
	}

	if _, err := s.cli.PutObject(ctx, put); err != nil {
		return fmt.Errorf("s3 sink: put s3://%s/%s: %w", s.bucket, key, err)
	}

	s.NotifyLoggers(
		types.InfoLevel,
		"Uploaded result table",
		"component", s.componentMetadata,
		"event", "Write",
		"result", "SUCCESS",
		"bucket", s.bucket,
		"key", key,
		"bytes", body.Len(),
	)
	return nil
}
