package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"distrito_racing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingStorageBucket = errors.New("missing STORAGE_BUCKET")

// S3Storage stores uploaded event assets (images, regulations) in an S3
// bucket and serves them through public object URLs.
type S3Storage struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

var _ interfaces.IFileStorage = (*S3Storage)(nil)

func NewS3Storage(client *s3.Client) (*S3Storage, error) {
	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		log.Printf("[storage][s3] missing STORAGE_BUCKET")
		return nil, ErrMissingStorageBucket
	}

	publicURL := strings.TrimSuffix(os.Getenv("STORAGE_PUBLIC_URL"), "/")
	if publicURL == "" {
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = "us-east-1"
		}
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &S3Storage{client: client, bucket: bucket, publicURL: publicURL}, nil
}

func (s *S3Storage) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[storage][s3] upload failed key=%s err=%v", key, err)
		return "", err
	}
	log.Printf("[storage][s3] upload success key=%s size=%d", key, len(body))

	return s.publicURL + "/" + key, nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("[storage][s3] delete failed key=%s err=%v", key, err)
		return err
	}
	return nil
}
