// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// # FFProbe

func TestFFProbe_Duration(t *testing.T) {
	probe := NewFFProbe("", time.Second)
	assert.Equal(t, "ffprobe", probe.Binary)

	probe.Run = func(_ context.Context, binary string, args ...string) ([]byte, error) {
		assert.Equal(t, "ffprobe", binary)
		assert.Equal(t, "/tmp/upload-1.mp4", args[len(args)-1])
		assert.Contains(t, args, "format=duration")
		return []byte(`{"format":{"duration":"12.480000"}}`), nil
	}

	seconds, err := probe.Duration(context.Background(), "/tmp/upload-1.mp4")
	require.NoError(t, err)
	assert.InDelta(t, 12.48, seconds, 0.0001)
}

func TestFFProbe_Failures(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
	}{
		{"command_failed", "", errors.New("exit status 1")},
		{"not_json", "12.48", nil},
		{"missing_duration", `{"format":{}}`, nil},
		{"na_duration", `{"format":{"duration":"N/A"}}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := NewFFProbe("ffprobe", time.Second)
			probe.Run = func(context.Context, string, ...string) ([]byte, error) {
				return []byte(tt.output), tt.err
			}

			_, err := probe.Duration(context.Background(), "clip.mp4")
			assert.Error(t, err)
		})
	}
}

// # S3Storage

type fakeUploader struct {
	keys []string
	err  error
}

func (uploader *fakeUploader) Upload(_ context.Context, input *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	if uploader.err != nil {
		return nil, uploader.err
	}
	uploader.keys = append(uploader.keys, aws.ToString(input.Key))
	return &manager.UploadOutput{}, nil
}

type fakeDeleter struct {
	keys []string
}

func (deleter *fakeDeleter) DeleteObject(_ context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	deleter.keys = append(deleter.keys, aws.ToString(input.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_UploadAndDelete(t *testing.T) {
	uploader := &fakeUploader{}
	deleter := &fakeDeleter{}
	storage := newS3Storage(uploader, deleter, StorageConfig{
		Bucket:        "vidtube-media",
		PublicBaseURL: "https://cdn.vidtube.test/",
	})

	localPath := filepath.Join(t.TempDir(), "upload-123.MP4")
	require.NoError(t, os.WriteFile(localPath, []byte("frames"), 0o600))

	url, err := storage.Upload(context.Background(), localPath)
	require.NoError(t, err)
	require.Len(t, uploader.keys, 1)
	assert.True(t, strings.HasSuffix(uploader.keys[0], ".mp4"))
	assert.Equal(t, "https://cdn.vidtube.test/"+uploader.keys[0], url)

	require.NoError(t, storage.Delete(context.Background(), url))
	require.NoError(t, storage.Delete(context.Background(), ""))
	assert.Equal(t, uploader.keys, deleter.keys)
}

func TestS3Storage_UploadFailures(t *testing.T) {
	storage := newS3Storage(&fakeUploader{err: errors.New("503")}, &fakeDeleter{}, StorageConfig{Bucket: "b", Region: "us-east-1"})

	_, err := storage.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	localPath := filepath.Join(t.TempDir(), "thumb.png")
	require.NoError(t, os.WriteFile(localPath, []byte("png"), 0o600))
	_, err = storage.Upload(context.Background(), localPath)
	assert.ErrorContains(t, err, "503")
}

func TestS3Storage_DefaultBaseURL(t *testing.T) {
	storage := newS3Storage(&fakeUploader{}, &fakeDeleter{}, StorageConfig{Bucket: "b", Region: "eu-west-1"})
	assert.Equal(t, "abc.png", storage.keyOf("https://b.s3.eu-west-1.amazonaws.com/abc.png"))
	assert.Equal(t, "abc.png", storage.keyOf("/abc.png"))
}
