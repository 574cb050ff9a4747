// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import "context"

// Repository defines the persistence operations for videos.
//
// Every mutation takes the owner ID and filters on it, so a write issued for
// the wrong owner affects no row and is reported as NotFound.
type Repository interface {
	// Feed returns one page of the listing and the total number of matches.
	Feed(ctx context.Context, query FeedQuery) ([]FeedVideo, int, error)

	// Create persists a new video and fills its ID and timestamps.
	Create(ctx context.Context, video *Video) error

	// FindByID returns the raw video row.
	FindByID(ctx context.Context, id string) (*Video, error)

	// FindWithOwner returns the feed projection of one video.
	FindWithOwner(ctx context.Context, id string) (*FeedVideo, error)

	// RecordView increments the view counter and appends the video to the
	// viewer's watch history.
	RecordView(ctx context.Context, videoID, viewerID string) error

	// Update applies the non-empty fields.
	Update(ctx context.Context, id, ownerID string, changes Changes) (*Video, error)

	// Delete removes the video together with the likes and playlist entries
	// that reference it.
	Delete(ctx context.Context, id, ownerID string) error

	// TogglePublish flips the publication flag and returns the new state.
	TogglePublish(ctx context.Context, id, ownerID string) (*Video, error)
}

// Changes carries a partial update. Empty fields keep their stored value.
type Changes struct {
	Title       string
	Description string
	Thumbnail   string
}
