// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package tweet manages short text posts published by a channel.
package tweet

import (
	"context"
	"time"
)

// Tweet is a short text post owned by an account.
type Tweet struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy implements ownership.Owned.
func (tweet *Tweet) OwnedBy() string { return tweet.OwnerID }

const (
	FieldTweetID = "tweetId"
	FieldUserID  = "userId"
	FieldContent = "content"
)

// Repository defines the persistence operations for tweets.
type Repository interface {
	Create(ctx context.Context, tweet *Tweet) error
	FindByID(ctx context.Context, id string) (*Tweet, error)

	// ListByOwner returns the owner's tweets, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]Tweet, error)

	// Update and Delete filter on the owner; a foreign owner matches no row.
	Update(ctx context.Context, id, ownerID, content string) (*Tweet, error)
	Delete(ctx context.Context, id, ownerID string) error
}
