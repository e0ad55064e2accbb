package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/clipdrop/internal/config"
)

const defaultRegion = "us-east-1"

// Options carries transport-level tuning. Timeout policy lives here, not in
// the orchestrator.
type Options struct {
	// Timeout bounds every request made by the transport. Zero means no
	// transport-imposed timeout.
	Timeout time.Duration
}

// S3Transport talks to any S3-compatible endpoint (AWS, MinIO, ...) using
// static credentials and path-style addressing.
type S3Transport struct {
	client *s3.Client
}

// NewS3Transport builds an S3 client for the given storage configuration.
// The configuration must already be normalized and validated.
func NewS3Transport(ctx context.Context, cfg config.StorageConfig, opts Options) (*S3Transport, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	httpClient := &http.Client{Timeout: opts.Timeout}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithHTTPClient(httpClient),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &S3Transport{client: client}, nil
}

func (t *S3Transport) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := t.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

func (t *S3Transport) HeadBucket(ctx context.Context, bucket string) error {
	_, err := t.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return fmt.Errorf("head bucket %q: %w", bucket, err)
	}
	return nil
}
