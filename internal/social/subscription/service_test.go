// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/toggle"
)

const (
	alice   = "0192f3e0-0000-7000-8000-000000000001"
	bob     = "0192f3e0-0000-7000-8000-000000000002"
	missing = "0192f3e0-0000-7000-8000-0000000000ff"
)

type pair struct{ subscriber, channel string }

type memoryRepository struct {
	accounts      map[string]Channel
	subscriptions []pair
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{accounts: map[string]Channel{
		alice: {ID: alice, Username: "alice"},
		bob:   {ID: bob, Username: "bob"},
	}}
}

func (repository *memoryRepository) AccountExists(_ context.Context, id string) (bool, error) {
	_, ok := repository.accounts[id]
	return ok, nil
}

func (repository *memoryRepository) Remove(_ context.Context, subscriberID, channelID string) (bool, error) {
	for i, entry := range repository.subscriptions {
		if entry == (pair{subscriberID, channelID}) {
			repository.subscriptions = append(repository.subscriptions[:i], repository.subscriptions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (repository *memoryRepository) Insert(_ context.Context, subscriberID, channelID string) error {
	repository.subscriptions = append(repository.subscriptions, pair{subscriberID, channelID})
	return nil
}

func (repository *memoryRepository) Subscribers(_ context.Context, channelID string) ([]Channel, error) {
	channels := []Channel{}
	for _, entry := range repository.subscriptions {
		if entry.channel == channelID {
			channels = append(channels, repository.accounts[entry.subscriber])
		}
	}
	return channels, nil
}

func (repository *memoryRepository) SubscribedChannels(_ context.Context, subscriberID string) ([]Channel, error) {
	channels := []Channel{}
	for _, entry := range repository.subscriptions {
		if entry.subscriber == subscriberID {
			channels = append(channels, repository.accounts[entry.channel])
		}
	}
	return channels, nil
}

func TestToggle_SubscribeThenUnsubscribe(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	result, err := service.Toggle(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, toggle.Added, result.Outcome)
	assert.True(t, result.Subscribed)

	subscribers, err := service.Subscribers(ctx, alice)
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "bob", subscribers[0].Username)

	result, err = service.Toggle(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, toggle.Removed, result.Outcome)

	channels, err := service.SubscribedChannels(ctx, bob)
	require.NoError(t, err)
	assert.NotNil(t, channels)
	assert.Empty(t, channels)
}

func TestToggle_Rejections(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Toggle(ctx, alice, alice)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "You cannot subscribe to your own channel", ae.Details[0].Message)

	_, err = service.Toggle(ctx, alice, missing)
	assert.Equal(t, "Channel not found", err.Error())

	_, err = service.Toggle(ctx, alice, "alice")
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	_, err = service.Subscribers(ctx, "nope")
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

func TestToggle_IDCaseIsIgnored(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Toggle(ctx, alice, strings.ToUpper(alice))
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, FieldChannelID, ae.Details[0].Field)

	result, err := service.Toggle(ctx, bob, strings.ToUpper(alice))
	require.NoError(t, err)
	assert.Equal(t, alice, result.ChannelID)

	subscribers, err := service.Subscribers(ctx, alice)
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "bob", subscribers[0].Username)
}
