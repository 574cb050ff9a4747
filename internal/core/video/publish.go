// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// PublishInput holds a new upload. Paths point at local temporary files.
type PublishInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

/*
Publish runs the publication saga: probe, upload the video, upload the
thumbnail, persist.

Description: Each failed step undoes the uploads that preceded it. Once
the first upload starts the work is detached from the caller's
cancellation, so a client disconnect never strands an object.

Parameters:
  - ctx: context.Context
  - actorID: string (Owner of the new video)
  - input: PublishInput

Returns:
  - *Video: Persisted video
  - error: ValidationError (missing field), UpstreamError (probe or upload), persistence error
*/
func (service *Service) Publish(ctx context.Context, actorID string, input PublishInput) (*Video, error) {
	err := (&validate.Validator{}).
		Required(FieldTitle, input.Title).
		Required(FieldDescription, input.Description).
		Custom(FieldVideoFile, input.VideoPath == "", "Video file is required").
		Custom(FieldThumbnail, input.ThumbnailPath == "", "Thumbnail is required").
		Err()
	if err != nil {
		return nil, err
	}

	// 1. Probe
	duration, err := service.prober.Duration(ctx, input.VideoPath)
	if err != nil {
		return nil, apperr.Upstream("Error while reading video duration", err)
	}

	detached := context.WithoutCancel(ctx)

	// 2. Upload video
	videoURL, err := service.storage.Upload(detached, input.VideoPath)
	if err != nil {
		return nil, apperr.Upstream("Error while uploading video", err)
	}

	// 3. Upload thumbnail
	thumbnailURL, err := service.storage.Upload(detached, input.ThumbnailPath)
	if err != nil {
		service.compensate(detached, videoURL)
		return nil, apperr.Upstream("Error while uploading thumbnail", err)
	}

	// 4. Persist
	video := &Video{
		ID:          uuid.New(),
		OwnerID:     actorID,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       input.Title,
		Description: input.Description,
		Duration:    duration,
		IsPublished: true,
	}
	if err := service.repository.Create(detached, video); err != nil {
		service.compensate(detached, videoURL, thumbnailURL)
		return nil, err
	}

	service.logger.InfoContext(ctx, "video_published",
		slog.String("video_id", video.ID),
		slog.String("owner_id", actorID),
		slog.Float64("duration", duration),
	)
	return video, nil
}

// compensate deletes the objects uploaded by a failed saga.
func (service *Service) compensate(ctx context.Context, locations ...string) {
	for _, location := range locations {
		if err := service.storage.Delete(ctx, location); err != nil {
			service.logger.ErrorContext(ctx, "publish_compensation_failed",
				slog.String("location", location),
				slog.Any("error", err),
			)
		}
	}
}
