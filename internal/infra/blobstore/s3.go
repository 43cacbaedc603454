package blobstore

import (
	"bytes"
	"context"

	"locadora-api/internal/pkg/config"
	"locadora-api/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Store struct {
	client *s3.Client
	cfg    config.Config
}

func NewS3Store(client *s3.Client, cfg config.Config) *S3Store {
	return &S3Store{
		client: client,
		cfg:    cfg,
	}
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Blob.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errs.Wrap(err, "put object")
	}

	return s.cfg.Blob.ObjectURL(s.cfg.AWS.Region, s.cfg.AWS.Endpoint, key), nil
}
