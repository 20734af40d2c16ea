package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader is the object storage port for image uploads.
type Uploader interface {
	Upload(ctx context.Context, filename string, contentType string, data []byte) (string, error)
}

// S3Uploader passes uploads through to an S3 bucket and returns the
// public URL of the stored object.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Uploader(ctx context.Context, bucket string, region string, baseURL string) (*S3Uploader, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return NewS3UploaderWithClient(s3.NewFromConfig(cfg), bucket, region, baseURL)
}

func NewS3UploaderWithClient(client *s3.Client, bucket string, region string, baseURL string) (*S3Uploader, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 client is required")
	}

	trimmedBase := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmedBase == "" {
		trimmedBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Uploader{
		client:  client,
		bucket:  bucket,
		baseURL: trimmedBase,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, filename string, contentType string, data []byte) (string, error) {
	if u == nil || u.client == nil {
		return "", fmt.Errorf("uploader is not initialized")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("upload data is empty")
	}

	key := objectKey(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return u.baseURL + "/" + key, nil
}

func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "uploads/" + uuid.NewString() + ext
}
