// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package playlist manages ordered, user-owned collections of videos.

# Ordering

A playlist stores its videos as an ordered set of IDs. Adding a video that
is already present leaves the playlist unchanged; removing one keeps the
relative order of the rest.
*/
package playlist

import "time"

// Playlist is a named, owned sequence of video IDs.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	VideoIDs    []string  `json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnedBy implements ownership.Owned.
func (playlist *Playlist) OwnedBy() string { return playlist.OwnerID }

// VideoSummary is the resolved form of one playlist entry.
type VideoSummary struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Thumbnail string  `json:"thumbnail"`
	VideoFile string  `json:"videoFile"`
	Duration  float64 `json:"duration"`
	Views     int64   `json:"views"`
	OwnerID   string  `json:"ownerId"`
}

// Detail is a playlist with its videos resolved in stored order.
type Detail struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	OwnerID     string         `json:"ownerId"`
	Videos      []VideoSummary `json:"videos"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

const (
	FieldPlaylistID  = "playlistId"
	FieldVideoID     = "videoId"
	FieldUserID      = "userId"
	FieldName        = "name"
	FieldDescription = "description"
)
