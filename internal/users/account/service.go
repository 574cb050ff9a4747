// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/internal/users/auth"
	"github.com/taibuivan/vidtube/pkg/normalize"
)

// MediaStorage stores uploaded images and returns their public URL.
type MediaStorage interface {
	Upload(ctx context.Context, localPath string) (string, error)
	Delete(ctx context.Context, location string) error
}

// Service implements the profile use cases.
type Service struct {
	repository Repository
	storage    MediaStorage
	logger     *slog.Logger
}

// NewService constructs a new account [Service].
func NewService(repository Repository, storage MediaStorage, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		storage:    storage,
		logger:     logger,
	}
}

// # Own Account

// CurrentUser returns the sanitized account of the actor.
func (service *Service) CurrentUser(context context.Context, actorID string) (*auth.Account, error) {
	account, err := service.repository.FindByID(context, actorID)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("User")
	}
	return account, err
}

/*
UpdateAccount changes the full name and/or the email of the actor.

Parameters:
  - context: context.Context
  - actorID: string
  - fullName, email: string (empty keeps the stored value)

Returns:
  - *auth.Account: Updated account
  - error: ValidationError (both empty, malformed email), Conflict (email taken)
*/
func (service *Service) UpdateAccount(context context.Context, actorID, fullName, email string) (*auth.Account, error) {
	email = normalize.Email(email)

	validator := &validate.Validator{}
	validator.AtLeastOne([]string{auth.FieldFullName, auth.FieldEmail}, fullName, email)
	if email != "" {
		validator.Email(auth.FieldEmail, email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.repository.UpdateDetails(context, actorID, fullName, email)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("User")
	}
	return account, err
}

// UpdateAvatar replaces the avatar with the uploaded file.
func (service *Service) UpdateAvatar(context context.Context, actorID, localPath string) (*auth.Account, error) {
	return service.replaceImage(context, actorID, ImageAvatar, localPath)
}

// UpdateCoverImage replaces the cover image with the uploaded file.
func (service *Service) UpdateCoverImage(context context.Context, actorID, localPath string) (*auth.Account, error) {
	return service.replaceImage(context, actorID, ImageCoverImage, localPath)
}

/*
replaceImage uploads the new file, stores its URL and then deletes the
previous object best-effort.

Returns:
  - error: ValidationError (no file), UpstreamError (upload failed)
*/
func (service *Service) replaceImage(ctx context.Context, actorID string, field ImageField, localPath string) (*auth.Account, error) {
	if localPath == "" {
		return nil, validate.RequiredError(string(field), "File is missing")
	}

	url, err := service.storage.Upload(ctx, localPath)
	if err != nil {
		return nil, apperr.Upstream("Error while uploading "+string(field), err)
	}

	previous, account, err := service.repository.ReplaceImage(ctx, actorID, field, url)
	if err != nil {
		service.discard(ctx, url)
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}

	service.discard(ctx, previous)
	return account, nil
}

// # Channel Pages

/*
ChannelProfile returns the page of a channel as seen by the viewer.

Parameters:
  - context: context.Context
  - username: string (any case)
  - viewerID: string (Authenticated viewer)

Returns:
  - *ChannelProfile: Aggregated read model
  - error: ValidationError (blank username), NotFound (no such channel)
*/
func (service *Service) ChannelProfile(context context.Context, username, viewerID string) (*ChannelProfile, error) {
	username = normalize.Username(username)
	if username == "" {
		return nil, validate.RequiredError(auth.FieldUsername, "Username is missing")
	}

	profile, err := service.repository.ChannelProfile(context, username, viewerID)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("Channel")
	}
	return profile, err
}

// WatchHistory returns the actor's history in stored order. An empty list is valid.
func (service *Service) WatchHistory(context context.Context, actorID string) ([]WatchedVideo, error) {
	return service.repository.WatchHistory(context, actorID)
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
