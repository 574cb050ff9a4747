// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package subscription manages the subscriber → channel relation.
package subscription

import (
	"context"

	"github.com/taibuivan/vidtube/internal/platform/toggle"
	"github.com/taibuivan/vidtube/internal/platform/validate"
)

// Channel is the public summary used for both sides of a subscription.
type Channel struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// Result reports the state of a subscription after a toggle.
type Result struct {
	ChannelID  string         `json:"channelId"`
	Subscribed bool           `json:"isSubscribed"`
	Outcome    toggle.Outcome `json:"outcome"`
}

const (
	FieldChannelID    = "channelId"
	FieldSubscriberID = "subscriberId"
)

const constraintSelf = "ck_subscription_self"

// errSelfSubscription is returned whenever the subscriber and channel match.
func errSelfSubscription() error {
	return validate.RequiredError(FieldChannelID, "You cannot subscribe to your own channel")
}

// Repository defines the persistence operations for subscriptions.
type Repository interface {
	AccountExists(ctx context.Context, id string) (bool, error)
	Remove(ctx context.Context, subscriberID, channelID string) (bool, error)
	Insert(ctx context.Context, subscriberID, channelID string) error

	// Subscribers resolves the accounts subscribed to the channel, newest first.
	Subscribers(ctx context.Context, channelID string) ([]Channel, error)

	// SubscribedChannels resolves the channels the account follows, newest first.
	SubscribedChannels(ctx context.Context, subscriberID string) ([]Channel, error)
}
