// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ownership"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// MediaStorage stores uploaded media and returns their public URL.
type MediaStorage interface {
	Upload(ctx context.Context, localPath string) (string, error)
	Delete(ctx context.Context, location string) error
}

// Prober reads the playback duration of a local media file, in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Service implements the video use cases.
type Service struct {
	repository Repository
	storage    MediaStorage
	prober     Prober
	logger     *slog.Logger
}

// NewService constructs a new video [Service].
func NewService(repository Repository, storage MediaStorage, prober Prober, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		storage:    storage,
		prober:     prober,
		logger:     logger,
	}
}

// # Listing

/*
Feed returns one page of videos.

Description: Only published videos are listed. When the owner filter names
the viewer, the viewer's drafts are included as well.

Returns:
  - []FeedVideo: Non-empty page
  - pagination.Meta: Page metadata
  - error: ValidationError (bad sort or userId), NotFound (no match)
*/
func (service *Service) Feed(context context.Context, query FeedQuery) ([]FeedVideo, pagination.Meta, error) {
	if query.SortBy == "" {
		query.SortBy = DefaultSortBy
	}
	if query.SortType == "" {
		query.SortType = DefaultSortType
	}

	validator := &validate.Validator{}
	validator.Custom(FieldSortBy, SortFields[query.SortBy] == "", "Must be one of: createdAt, title, views, duration")
	validator.OneOf(FieldSortType, query.SortType, "asc", "desc")
	if query.UserID != "" {
		validator.UUID(FieldUserID, query.UserID)
	}
	if err := validator.Err(); err != nil {
		return nil, pagination.Meta{}, err
	}

	if query.UserID == "" || query.UserID != query.ViewerID {
		query.ViewerID = ""
	}

	videos, total, err := service.repository.Feed(context, query)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if len(videos) == 0 {
		return nil, pagination.Meta{}, apperr.NotFound("Videos")
	}

	return videos, pagination.NewMeta(query.Page.Page, query.Page.Limit, total), nil
}

// # Single Video

/*
GetVideo returns one video with its owner.

Description: Drafts are visible to their owner only. An authenticated read
counts as a view and lands in the viewer's watch history; a failure to
record it is logged and does not fail the read.

Returns:
  - *FeedVideo: The video
  - error: ValidationError (malformed id), NotFound (absent or hidden)
*/
func (service *Service) GetVideo(ctx context.Context, id, viewerID string) (*FeedVideo, error) {
	if err := validate.ID(FieldVideoID, id); err != nil {
		return nil, err
	}

	video, err := service.repository.FindWithOwner(ctx, id)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("Video")
	}
	if err != nil {
		return nil, err
	}

	if !video.IsPublished && video.Owner.ID != viewerID {
		return nil, apperr.NotFound("Video")
	}

	if viewerID == "" {
		return video, nil
	}

	if err := service.repository.RecordView(context.WithoutCancel(ctx), id, viewerID); err != nil {
		service.logger.WarnContext(ctx, "record_view_failed",
			slog.String("video_id", id),
			slog.Any("error", err),
		)
		return video, nil
	}

	video.Views++
	return video, nil
}

/*
UpdateVideo edits the title, description and/or the thumbnail.

Parameters:
  - thumbnailPath: string (local file, empty keeps the stored thumbnail)

Returns:
  - *Video: Updated row
  - error: ValidationError, NotFound, Forbidden, UpstreamError (upload failed)
*/
func (service *Service) UpdateVideo(ctx context.Context, actorID, id, title, description, thumbnailPath string) (*Video, error) {
	if err := validate.ID(FieldVideoID, id); err != nil {
		return nil, err
	}

	err := (&validate.Validator{}).
		AtLeastOne([]string{FieldTitle, FieldDescription, FieldThumbnail}, title, description, thumbnailPath).
		Err()
	if err != nil {
		return nil, err
	}

	current, err := service.owned(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	changes := Changes{Title: title, Description: description}
	if thumbnailPath != "" {
		changes.Thumbnail, err = service.storage.Upload(ctx, thumbnailPath)
		if err != nil {
			return nil, apperr.Upstream("Error while uploading thumbnail", err)
		}
	}

	updated, err := service.repository.Update(ctx, id, actorID, changes)
	if err != nil {
		service.discard(ctx, changes.Thumbnail)
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.NotFound("Video")
		}
		return nil, err
	}

	if changes.Thumbnail != "" {
		service.discard(ctx, current.Thumbnail)
	}
	return updated, nil
}

// DeleteVideo removes the video and then its media objects, best-effort.
func (service *Service) DeleteVideo(ctx context.Context, actorID, id string) error {
	if err := validate.ID(FieldVideoID, id); err != nil {
		return err
	}

	current, err := service.owned(ctx, actorID, id)
	if err != nil {
		return err
	}

	if err := service.repository.Delete(ctx, id, actorID); err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return apperr.NotFound("Video")
		}
		return err
	}

	service.discard(ctx, current.VideoFile)
	service.discard(ctx, current.Thumbnail)
	return nil
}

// TogglePublishStatus flips the publication flag of an owned video.
func (service *Service) TogglePublishStatus(context context.Context, actorID, id string) (*Video, error) {
	if err := validate.ID(FieldVideoID, id); err != nil {
		return nil, err
	}

	if _, err := service.owned(context, actorID, id); err != nil {
		return nil, err
	}

	video, err := service.repository.TogglePublish(context, id, actorID)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("Video")
	}
	return video, err
}

// # Helpers

// owned loads a video and checks that the actor owns it.
func (service *Service) owned(context context.Context, actorID, id string) (*Video, error) {
	video, err := service.repository.FindByID(context, id)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("Video")
	}
	if err != nil {
		return nil, err
	}
	if err := ownership.Ensure(actorID, video, "video"); err != nil {
		return nil, err
	}
	return video, nil
}

// discard deletes a stored object without failing the caller.
func (service *Service) discard(ctx context.Context, location string) {
	if location == "" {
		return
	}
	if err := service.storage.Delete(context.WithoutCancel(ctx), location); err != nil {
		service.logger.Warn("media_cleanup_failed",
			slog.String("location", location),
			slog.Any("error", err),
		)
	}
}
