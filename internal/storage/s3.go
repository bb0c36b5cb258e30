package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/forkful/recipe-api/config"
)

const s3KeyPrefix = "recipe-images/"

// S3Store stores image objects in an S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(s3cfg *config.S3Config) *S3Store {
	return &S3Store{
		client: s3cfg.Client,
		bucket: s3cfg.BucketName,
	}
}

func (s *S3Store) Save(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s3KeyPrefix + name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload image to S3: %w", err)
	}
	return nil
}

func (s *S3Store) Remove(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3KeyPrefix + name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image from S3: %w", err)
	}
	return nil
}

func (s *S3Store) URL(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s%s", s.bucket, s3KeyPrefix, name)
}
