// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package video manages the Video entity: the feed, publication, reads that
record a view, owner edits and the publish toggle.

# Core Responsibility

  - Catalogue: Defines [Video] and the owner-joined [FeedVideo] projection.
  - Publication: Runs the probe, upload, upload, persist saga with compensation.
  - Ownership: Every mutation is owner-checked before it is issued.
*/
package video

import (
	"time"

	"github.com/taibuivan/vidtube/pkg/pagination"
)

// # Core Entities

// Video is a published or draft upload owned by a channel.
type Video struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"` // Seconds, probed at publish time
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnedBy implements ownership.Owned.
func (video *Video) OwnedBy() string { return video.OwnerID }

// Owner is the public summary of the channel that uploaded a video.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// FeedVideo is the projection returned by listings and single reads.
type FeedVideo struct {
	ID          string    `json:"id"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       Owner     `json:"owner"`
}

// # Search & Sorting

// SortFields maps the accepted sortBy values to their columns.
var SortFields = map[string]string{
	"createdAt": "v.createdat",
	"title":     "v.title",
	"views":     "v.views",
	"duration":  "v.duration",
}

const (
	DefaultSortBy   = "createdAt"
	DefaultSortType = "desc"
)

// FeedQuery holds the parameters of a video listing.
type FeedQuery struct {
	Query    string // Case-insensitive title substring
	SortBy   string
	SortType string // "asc" or "desc"
	UserID   string // Optional owner filter
	ViewerID string // Set by the service; unlocks the viewer's own drafts
	Page     pagination.Params
}

// # Field Identifiers

const (
	FieldVideoID     = "videoId"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldVideoFile   = "videoFile"
	FieldThumbnail   = "thumbnail"
	FieldSortBy      = "sortBy"
	FieldSortType    = "sortType"
	FieldUserID      = "userId"
	FieldQuery       = "query"
)
