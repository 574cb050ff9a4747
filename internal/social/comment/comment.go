// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment manages comments on videos.

# Ownership

Only the author of a comment may edit or delete it. Any other actor is
rejected with Forbidden after the comment has been found.
*/
package comment

import "time"

// Comment is a text reply attached to a video.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	VideoID   string    `json:"videoId"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy implements ownership.Owned.
func (comment *Comment) OwnedBy() string { return comment.OwnerID }

// Author is the public summary of the account that wrote a comment.
type Author struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// VideoSummary identifies the video a comment belongs to.
type VideoSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// VideoComment is the read projection of a comment with its author and video.
type VideoComment struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	Owner     Author       `json:"owner"`
	Video     VideoSummary `json:"video"`
}

const (
	FieldCommentID = "commentId"
	FieldVideoID   = "videoId"
	FieldContent   = "content"
)
