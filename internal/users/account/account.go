// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles the profile side of a user: viewing and editing the
own account, the public channel page, and the watch history.

# Architecture

  - Entities: [ChannelProfile], [WatchedVideo] (read models).
  - Domain: This package depends on the auth package for the Account entity.
*/
package account

import (
	"context"
	"time"

	"github.com/taibuivan/vidtube/internal/users/auth"
)

// # Read Models

// ChannelProfile is the public page of a channel as seen by a viewer.
type ChannelProfile struct {
	ID                        string `json:"id"`
	FullName                  string `json:"fullName"`
	Username                  string `json:"username"`
	Email                     string `json:"email"`
	Avatar                    string `json:"avatar"`
	CoverImage                string `json:"coverImage"`
	SubscribersCount          int    `json:"subscribersCount"`
	ChannelsSubscribedToCount int    `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
}

// Owner is the channel summary attached to each watched video.
type Owner struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// WatchedVideo is one entry of the watch history.
type WatchedVideo struct {
	ID          string    `json:"id"`
	VideoFile   string    `json:"videoFile"`
	Thumbnail   string    `json:"thumbnail"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Views       int64     `json:"views"`
	Owner       Owner     `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ImageField selects which account image an upload replaces.
type ImageField string

const (
	ImageAvatar     ImageField = "avatar"
	ImageCoverImage ImageField = "coverImage"
)

// # Repository Contracts

// Repository defines the persistence contract for profiles.
type Repository interface {
	/*
		FindByID retrieves an account by its ID.

		Returns:
		  - *auth.Account: Loaded entity
		  - error: NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.Account, error)

	/*
		UpdateDetails overwrites the non-empty fields among fullName and email.

		Returns:
		  - *auth.Account: Updated entity
		  - error: NotFound, Conflict (email taken) or storage failures
	*/
	UpdateDetails(context context.Context, id, fullName, email string) (*auth.Account, error)

	/*
		ReplaceImage stores a new image URL and returns the one it replaced.
	*/
	ReplaceImage(context context.Context, id string, field ImageField, url string) (previous string, account *auth.Account, err error)

	/*
		ChannelProfile aggregates the channel identified by username.
		viewerID may be empty for anonymous viewers.

		Returns:
		  - *ChannelProfile: Aggregated read model
		  - error: NotFound or storage failures
	*/
	ChannelProfile(context context.Context, username, viewerID string) (*ChannelProfile, error)

	/*
		WatchHistory resolves the ordered history of an account. Duplicates
		are preserved and deleted videos are skipped.
	*/
	WatchHistory(context context.Context, id string) ([]WatchedVideo, error)
}
