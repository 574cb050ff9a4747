// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import "context"

// Repository defines the persistence operations for playlists.
//
// Mutations filter on the owner; a foreign owner matches no row.
type Repository interface {
	Create(ctx context.Context, playlist *Playlist) error
	FindByID(ctx context.Context, id string) (*Playlist, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Playlist, error)

	// ResolveVideos returns the playlist entries in stored order. Entries
	// whose video no longer exists, or is unpublished and not owned by
	// viewerID, are skipped. An empty viewerID is anonymous.
	ResolveVideos(ctx context.Context, id, viewerID string) ([]VideoSummary, error)

	// VideoExists reports whether the video is present and visible to viewerID.
	VideoExists(ctx context.Context, videoID, viewerID string) (bool, error)

	// AddVideo appends the video unless it is already present.
	AddVideo(ctx context.Context, id, ownerID, videoID string) (*Playlist, error)

	// RemoveVideo drops every occurrence of the video.
	RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*Playlist, error)

	Update(ctx context.Context, id, ownerID, name, description string) (*Playlist, error)
	Delete(ctx context.Context, id, ownerID string) error
}
