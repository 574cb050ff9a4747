// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

const (
	alice   = "0192f3e0-0000-7000-8000-000000000001"
	bob     = "0192f3e0-0000-7000-8000-000000000002"
	videoA  = "0192f3e0-0000-7000-8000-0000000000a1"
	videoB  = "0192f3e0-0000-7000-8000-0000000000a2"
	draft   = "0192f3e0-0000-7000-8000-0000000000a3"
	missing = "0192f3e0-0000-7000-8000-0000000000ff"
)

type memoryRepository struct {
	playlists []*Playlist
	videos    map[string]VideoSummary
	drafts    map[string]bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		videos: map[string]VideoSummary{
			videoA: {ID: videoA, Title: "A", OwnerID: bob},
			videoB: {ID: videoB, Title: "B", OwnerID: bob},
			draft:  {ID: draft, Title: "Draft", OwnerID: bob},
		},
		drafts: map[string]bool{draft: true},
	}
}

func (repository *memoryRepository) visible(videoID, viewerID string) (VideoSummary, bool) {
	video, ok := repository.videos[videoID]
	if !ok || (repository.drafts[videoID] && video.OwnerID != viewerID) {
		return VideoSummary{}, false
	}
	return video, true
}

func (repository *memoryRepository) Create(_ context.Context, playlist *Playlist) error {
	repository.playlists = append(repository.playlists, playlist)
	return nil
}

func (repository *memoryRepository) get(id string) *Playlist {
	for _, playlist := range repository.playlists {
		if playlist.ID == id {
			return playlist
		}
	}
	return nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*Playlist, error) {
	if playlist := repository.get(id); playlist != nil {
		copied := *playlist
		copied.VideoIDs = slices.Clone(playlist.VideoIDs)
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) ListByOwner(_ context.Context, ownerID string) ([]Playlist, error) {
	playlists := []Playlist{}
	for i := len(repository.playlists) - 1; i >= 0; i-- {
		if repository.playlists[i].OwnerID == ownerID {
			playlists = append(playlists, *repository.playlists[i])
		}
	}
	return playlists, nil
}

func (repository *memoryRepository) ResolveVideos(_ context.Context, id, viewerID string) ([]VideoSummary, error) {
	videos := []VideoSummary{}
	for _, videoID := range repository.get(id).VideoIDs {
		if video, ok := repository.visible(videoID, viewerID); ok {
			videos = append(videos, video)
		}
	}
	return videos, nil
}

func (repository *memoryRepository) VideoExists(_ context.Context, videoID, viewerID string) (bool, error) {
	_, ok := repository.visible(videoID, viewerID)
	return ok, nil
}

func (repository *memoryRepository) owned(id, ownerID string) (*Playlist, error) {
	playlist := repository.get(id)
	if playlist == nil || playlist.OwnerID != ownerID {
		return nil, dberr.ErrNotFound
	}
	return playlist, nil
}

func (repository *memoryRepository) AddVideo(_ context.Context, id, ownerID, videoID string) (*Playlist, error) {
	playlist, err := repository.owned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(playlist.VideoIDs, videoID) {
		playlist.VideoIDs = append(playlist.VideoIDs, videoID)
	}
	return playlist, nil
}

func (repository *memoryRepository) RemoveVideo(_ context.Context, id, ownerID, videoID string) (*Playlist, error) {
	playlist, err := repository.owned(id, ownerID)
	if err != nil {
		return nil, err
	}
	playlist.VideoIDs = slices.DeleteFunc(playlist.VideoIDs, func(candidate string) bool { return candidate == videoID })
	return playlist, nil
}

func (repository *memoryRepository) Update(_ context.Context, id, ownerID, name, description string) (*Playlist, error) {
	playlist, err := repository.owned(id, ownerID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	return playlist, nil
}

func (repository *memoryRepository) Delete(_ context.Context, id, ownerID string) error {
	if _, err := repository.owned(id, ownerID); err != nil {
		return err
	}
	repository.playlists = slices.DeleteFunc(repository.playlists, func(playlist *Playlist) bool { return playlist.ID == id })
	return nil
}

func TestCreateAndList(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, alice, "Road trips", "")
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	_, err = service.ListByOwner(ctx, alice)
	assert.Equal(t, "Playlists not found", err.Error())

	playlist, err := service.Create(ctx, alice, "Road trips", "Summer 2026")
	require.NoError(t, err)
	assert.Empty(t, playlist.VideoIDs)

	playlists, err := service.ListByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, playlists, 1)
}

func TestVideoMembership(t *testing.T) {
	repository := newMemoryRepository()
	service := NewService(repository)
	ctx := context.Background()

	playlist, err := service.Create(ctx, alice, "Mix", "Favourites")
	require.NoError(t, err)

	t.Run("set_union", func(t *testing.T) {
		_, err := service.AddVideo(ctx, alice, playlist.ID, videoB)
		require.NoError(t, err)
		_, err = service.AddVideo(ctx, alice, playlist.ID, videoA)
		require.NoError(t, err)
		updated, err := service.AddVideo(ctx, alice, playlist.ID, videoB)
		require.NoError(t, err)

		assert.Equal(t, []string{videoB, videoA}, updated.VideoIDs)
	})

	t.Run("resolved_in_order", func(t *testing.T) {
		detail, err := service.GetByID(ctx, "", playlist.ID)
		require.NoError(t, err)
		require.Len(t, detail.Videos, 2)
		assert.Equal(t, "B", detail.Videos[0].Title)
		assert.Equal(t, "A", detail.Videos[1].Title)
	})

	t.Run("missing_video", func(t *testing.T) {
		_, err := service.AddVideo(ctx, alice, playlist.ID, missing)
		assert.Equal(t, "Video not found", err.Error())
	})

	t.Run("foreign_draft", func(t *testing.T) {
		_, err := service.AddVideo(ctx, alice, playlist.ID, draft)
		assert.Equal(t, "Video not found", err.Error())
	})

	t.Run("malformed_ids", func(t *testing.T) {
		_, err := service.AddVideo(ctx, alice, "x", "y")
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Len(t, ae.Details, 2)
	})

	t.Run("foreign_actor", func(t *testing.T) {
		_, err := service.AddVideo(ctx, bob, playlist.ID, videoA)
		assert.True(t, apperr.HasCode(err, "FORBIDDEN"))
		_, err = service.RemoveVideo(ctx, bob, playlist.ID, videoA)
		assert.True(t, apperr.HasCode(err, "FORBIDDEN"))
		_, err = service.Update(ctx, bob, playlist.ID, "Mine now", "")
		assert.True(t, apperr.HasCode(err, "FORBIDDEN"))
		assert.True(t, apperr.HasCode(service.Delete(ctx, bob, playlist.ID), "FORBIDDEN"))
	})

	t.Run("set_removal", func(t *testing.T) {
		updated, err := service.RemoveVideo(ctx, alice, playlist.ID, videoB)
		require.NoError(t, err)
		assert.Equal(t, []string{videoA}, updated.VideoIDs)
	})
}

func TestUpdateAndDelete(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	playlist, err := service.Create(ctx, alice, "Mix", "Favourites")
	require.NoError(t, err)

	_, err = service.Update(ctx, alice, playlist.ID, " ", "")
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	updated, err := service.Update(ctx, alice, playlist.ID, "", "Late night")
	require.NoError(t, err)
	assert.Equal(t, "Mix", updated.Name)
	assert.Equal(t, "Late night", updated.Description)

	require.NoError(t, service.Delete(ctx, alice, playlist.ID))

	_, err = service.GetByID(ctx, "", playlist.ID)
	assert.Equal(t, "Playlist not found", err.Error())
}

func TestGetByID_DraftVisibleToOwnerOnly(t *testing.T) {
	repository := newMemoryRepository()
	service := NewService(repository)
	ctx := context.Background()

	playlist, err := service.Create(ctx, bob, "Upcoming", "Work in progress")
	require.NoError(t, err)
	_, err = service.AddVideo(ctx, bob, playlist.ID, draft)
	require.NoError(t, err)
	_, err = service.AddVideo(ctx, bob, playlist.ID, videoA)
	require.NoError(t, err)

	owner, err := service.GetByID(ctx, bob, playlist.ID)
	require.NoError(t, err)
	assert.Len(t, owner.Videos, 2)

	for _, viewer := range []string{alice, ""} {
		detail, err := service.GetByID(ctx, viewer, playlist.ID)
		require.NoError(t, err)
		require.Len(t, detail.Videos, 1)
		assert.Equal(t, videoA, detail.Videos[0].ID)
	}
}
