// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media wraps the two external media capabilities VidTube depends on:
object storage for uploaded files and ffprobe for reading video duration.

Both are injected into the services as narrow interfaces, so domain code never
imports the AWS SDK or shells out directly.
*/
package media

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/taibuivan/vidtube/pkg/uuid"
)

// partSize is the multipart chunk used for large video uploads.
const partSize = 8 * 1024 * 1024

// StorageConfig selects the bucket and, for S3-compatible services, the endpoint.
type StorageConfig struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
}

type uploadAPI interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type deleteAPI interface {
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage stores uploaded files in an S3-compatible bucket.
type S3Storage struct {
	uploader uploadAPI
	client   deleteAPI
	bucket   string
	baseURL  string
}

// NewS3Storage loads AWS credentials from the environment and builds the uploader.
func NewS3Storage(ctx context.Context, cfg StorageConfig) (*S3Storage, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("media: bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("media: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	})

	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = partSize
		u.LeavePartsOnError = false
	})

	return newS3Storage(uploader, client, cfg), nil
}

func newS3Storage(uploader uploadAPI, client deleteAPI, cfg StorageConfig) *S3Storage {
	baseURL := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &S3Storage{
		uploader: uploader,
		client:   client,
		bucket:   cfg.Bucket,
		baseURL:  baseURL,
	}
}

/*
Upload stores the local file under a fresh key and returns its public URL.

Parameters:
  - context: context.Context
  - localPath: path of the temp file written by the multipart parser

Returns:
  - string: public URL of the stored object
  - error: open or upload failures
*/
func (storage *S3Storage) Upload(context context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("media: open %s: %w", localPath, err)
	}
	defer file.Close()

	extension := strings.ToLower(filepath.Ext(localPath))
	key := uuid.New() + extension

	input := &s3.PutObjectInput{
		Bucket: aws.String(storage.bucket),
		Key:    aws.String(key),
		Body:   file,
		ACL:    s3types.ObjectCannedACLPublicRead,
	}
	if contentType := mime.TypeByExtension(extension); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := storage.uploader.Upload(context, input); err != nil {
		return "", fmt.Errorf("media: upload %s: %w", key, err)
	}

	return storage.baseURL + "/" + key, nil
}

// Delete removes an object given either its public URL or its bare key.
// Empty locations are a no-op.
func (storage *S3Storage) Delete(context context.Context, location string) error {
	key := storage.keyOf(location)
	if key == "" {
		return nil
	}

	_, err := storage.client.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(storage.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("media: delete %s: %w", key, err)
	}
	return nil
}

func (storage *S3Storage) keyOf(location string) string {
	location = strings.TrimSpace(location)
	if rest, ok := strings.CutPrefix(location, storage.baseURL+"/"); ok {
		return rest
	}
	return strings.TrimLeft(location, "/")
}
