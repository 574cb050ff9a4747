// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package like manages likes on videos, comments and tweets.

A like is a toggle relation between an account and one target. Its target
kind and ID are stored side by side with a uniqueness constraint, so an
account holds at most one like per target.
*/
package like

import (
	"context"
	"time"

	"github.com/taibuivan/vidtube/internal/platform/toggle"
)

// Kind is the type of entity a like points at.
type Kind string

const (
	KindVideo   Kind = "video"
	KindComment Kind = "comment"
	KindTweet   Kind = "tweet"
)

// noun is the resource name used in error messages.
func (kind Kind) noun() string {
	switch kind {
	case KindVideo:
		return "Video"
	case KindComment:
		return "Comment"
	default:
		return "Tweet"
	}
}

// Result reports the state of a like after a toggle.
type Result struct {
	Kind     Kind           `json:"targetKind"`
	TargetID string         `json:"targetId"`
	Liked    bool           `json:"isLiked"`
	Outcome  toggle.Outcome `json:"outcome"`
}

// Owner is the public summary of a video's channel.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// LikedVideo is one entry of the actor's liked videos.
type LikedVideo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	VideoFile string    `json:"videoFile"`
	Duration  float64   `json:"duration"`
	Views     int64     `json:"views"`
	LikedAt   time.Time `json:"likedAt"`
	Owner     Owner     `json:"owner"`
}

const (
	FieldVideoID   = "videoId"
	FieldCommentID = "commentId"
	FieldTweetID   = "tweetId"
)

// Repository defines the persistence operations for likes.
type Repository interface {
	// TargetExists reports whether the target is present and visible to the
	// actor. Unpublished videos, and comments on them, count only for the
	// video's owner.
	TargetExists(ctx context.Context, actorID string, kind Kind, targetID string) (bool, error)

	// Remove deletes the like and reports whether one existed.
	Remove(ctx context.Context, actorID string, kind Kind, targetID string) (bool, error)

	// Insert creates the like; an existing like is left untouched.
	Insert(ctx context.Context, actorID string, kind Kind, targetID string) error

	// LikedVideos lists the liked videos, newest like first.
	LikedVideos(ctx context.Context, actorID string) ([]LikedVideo, error)
}
