// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import (
	"context"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/toggle"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Service implements the subscription use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new subscription [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
Toggle subscribes the actor to a channel, or unsubscribes if already subscribed.

Returns:
  - *Result: State after the toggle
  - error: ValidationError (malformed id, own channel), NotFound (no such channel)
*/
func (service *Service) Toggle(ctx context.Context, actorID, channelID string) (*Result, error) {
	if err := validate.ID(FieldChannelID, channelID); err != nil {
		return nil, err
	}
	channelID = uuid.Canonical(channelID)
	if uuid.Equal(channelID, actorID) {
		return nil, errSelfSubscription()
	}

	exists, err := service.repository.AccountExists(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Channel")
	}

	outcome, err := toggle.Flip(ctx, toggle.Funcs{
		RemoveFunc: func(ctx context.Context) (bool, error) {
			return service.repository.Remove(ctx, actorID, channelID)
		},
		InsertFunc: func(ctx context.Context) error {
			return service.repository.Insert(ctx, actorID, channelID)
		},
	})
	if err != nil {
		return nil, err
	}

	return &Result{ChannelID: channelID, Subscribed: outcome.Active(), Outcome: outcome}, nil
}

// Subscribers lists the accounts subscribed to a channel. An empty list is valid.
func (service *Service) Subscribers(context context.Context, channelID string) ([]Channel, error) {
	if err := validate.ID(FieldChannelID, channelID); err != nil {
		return nil, err
	}
	return service.repository.Subscribers(context, channelID)
}

// SubscribedChannels lists the channels an account follows. An empty list is valid.
func (service *Service) SubscribedChannels(context context.Context, subscriberID string) ([]Channel, error) {
	if err := validate.ID(FieldSubscriberID, subscriberID); err != nil {
		return nil, err
	}
	return service.repository.SubscribedChannels(context, subscriberID)
}
