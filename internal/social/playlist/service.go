// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"
	"strings"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ownership"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Service implements the playlist use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new playlist [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// # Reads

// ListByOwner returns a user's playlists, newest first. Empty is NotFound.
func (service *Service) ListByOwner(context context.Context, userID string) ([]Playlist, error) {
	if err := validate.ID(FieldUserID, userID); err != nil {
		return nil, err
	}

	playlists, err := service.repository.ListByOwner(context, userID)
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, apperr.NotFound("Playlists")
	}
	return playlists, nil
}

/*
GetByID returns a playlist with its videos resolved in stored order.
Unpublished videos appear only when the viewer owns them.

Returns:
  - *Detail: Playlist and videos
  - error: ValidationError (malformed id), NotFound
*/
func (service *Service) GetByID(context context.Context, viewerID, id string) (*Detail, error) {
	if err := validate.ID(FieldPlaylistID, id); err != nil {
		return nil, err
	}

	playlist, err := service.find(context, id)
	if err != nil {
		return nil, err
	}

	videos, err := service.repository.ResolveVideos(context, id, viewerID)
	if err != nil {
		return nil, err
	}

	return &Detail{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		OwnerID:     playlist.OwnerID,
		Videos:      videos,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}, nil
}

// # Mutations

// Create makes an empty playlist. Name and description are both required.
func (service *Service) Create(context context.Context, actorID, name, description string) (*Playlist, error) {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)

	err := (&validate.Validator{}).
		Required(FieldName, name).
		Required(FieldDescription, description).
		Err()
	if err != nil {
		return nil, err
	}

	playlist := &Playlist{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     actorID,
		VideoIDs:    []string{},
	}
	if err := service.repository.Create(context, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// AddVideo inserts a video the actor can see into the actor's playlist. Adding twice keeps one entry.
func (service *Service) AddVideo(context context.Context, actorID, playlistID, videoID string) (*Playlist, error) {
	if err := validatePair(playlistID, videoID); err != nil {
		return nil, err
	}

	if _, err := service.owned(context, actorID, playlistID); err != nil {
		return nil, err
	}

	exists, err := service.repository.VideoExists(context, videoID, actorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Video")
	}

	playlist, err := service.repository.AddVideo(context, playlistID, actorID, videoID)
	return playlist, notFound(err)
}

// RemoveVideo drops a video from the actor's playlist.
func (service *Service) RemoveVideo(context context.Context, actorID, playlistID, videoID string) (*Playlist, error) {
	if err := validatePair(playlistID, videoID); err != nil {
		return nil, err
	}

	if _, err := service.owned(context, actorID, playlistID); err != nil {
		return nil, err
	}

	playlist, err := service.repository.RemoveVideo(context, playlistID, actorID, videoID)
	return playlist, notFound(err)
}

// Update changes the name and/or description. At least one is required.
func (service *Service) Update(context context.Context, actorID, id, name, description string) (*Playlist, error) {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)

	err := (&validate.Validator{}).
		UUID(FieldPlaylistID, id).
		AtLeastOne([]string{FieldName, FieldDescription}, name, description).
		Err()
	if err != nil {
		return nil, err
	}

	if _, err := service.owned(context, actorID, id); err != nil {
		return nil, err
	}

	playlist, err := service.repository.Update(context, id, actorID, name, description)
	return playlist, notFound(err)
}

// Delete removes the actor's playlist.
func (service *Service) Delete(context context.Context, actorID, id string) error {
	if err := validate.ID(FieldPlaylistID, id); err != nil {
		return err
	}

	if _, err := service.owned(context, actorID, id); err != nil {
		return err
	}

	return notFound(service.repository.Delete(context, id, actorID))
}

// # Helpers

func (service *Service) find(context context.Context, id string) (*Playlist, error) {
	playlist, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, notFound(err)
	}
	return playlist, nil
}

func (service *Service) owned(context context.Context, actorID, id string) (*Playlist, error) {
	playlist, err := service.find(context, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.Ensure(actorID, playlist, "playlist"); err != nil {
		return nil, err
	}
	return playlist, nil
}

// notFound names the resource in generic NotFound errors.
func notFound(err error) error {
	if apperr.HasCode(err, "NOT_FOUND") {
		return apperr.NotFound("Playlist")
	}
	return err
}

func validatePair(playlistID, videoID string) error {
	return (&validate.Validator{}).
		UUID(FieldPlaylistID, playlistID).
		UUID(FieldVideoID, videoID).
		Err()
}
