package services

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore serves house listing photos out of object storage.
type ImageStore interface {
	EnsureBucket(ctx context.Context) error
	Upload(ctx context.Context, objectKey string, reader io.Reader, size int64) error
	PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	Healthy(ctx context.Context) error
}

type minioImageStore struct {
	client *minio.Client
	bucket string
}

func NewMinioImageStore(endpoint, accessKey, secretKey string, useSSL bool, bucket string) (ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioImageStore{client: client, bucket: bucket}, nil
}

func (s *minioImageStore) EnsureBucket(ctx context.Context) error {
	found, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !found {
		return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (s *minioImageStore) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	return err
}

func (s *minioImageStore) PresignedURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (s *minioImageStore) Healthy(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}
