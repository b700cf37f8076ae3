package storage

import (
	"context"
	"os"

	"quickbuild_estimate/internal/infrastructure/awsconfig"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3ClientFromEnv creates the S3 client for the proposal archive.
// S3_ENDPOINT points it at MinIO, R2 or another S3-compatible store.
func NewS3ClientFromEnv(ctx context.Context) (*s3.Client, error) {
	endpoint := os.Getenv("S3_ENDPOINT")
	cfg, err := awsconfig.Load(ctx, s3.ServiceID, endpoint)
	if err != nil {
		return nil, err
	}
	// Self-hosted endpoints do not resolve virtual-hosted bucket names.
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = endpoint != ""
	}), nil
}
