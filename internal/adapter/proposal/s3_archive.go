package proposal

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"quickbuild_estimate/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the subset of *s3.Client the archive needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive stores proposals in a bucket. The returned location is the public
// base URL joined with the key, or an s3:// URI when no base URL is set.
type S3Archive struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

var _ interfaces.IProposalArchive = (*S3Archive)(nil)

func NewS3Archive(client ObjectPutter, bucket, baseURL string) *S3Archive {
	return &S3Archive{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

func (a *S3Archive) Put(ctx context.Context, key string, pdf []byte) (string, error) {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(pdf),
		ContentType:   aws.String("application/pdf"),
		ContentLength: aws.Int64(int64(len(pdf))),
	})
	if err != nil {
		log.Printf("[proposal][s3] put failed bucket=%s key=%s err=%v", a.bucket, key, err)
		return "", err
	}
	if a.baseURL == "" {
		return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
	}
	return fmt.Sprintf("%s/%s", a.baseURL, key), nil
}
