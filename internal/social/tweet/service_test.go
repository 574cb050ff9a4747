// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

const (
	alice = "0192f3e0-0000-7000-8000-000000000001"
	bob   = "0192f3e0-0000-7000-8000-000000000002"
)

type memoryRepository struct {
	tweets []*Tweet
	clock  time.Time
}

func (repository *memoryRepository) Create(_ context.Context, tweet *Tweet) error {
	repository.clock = repository.clock.Add(time.Second)
	tweet.CreatedAt = repository.clock
	repository.tweets = append(repository.tweets, tweet)
	return nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*Tweet, error) {
	for _, tweet := range repository.tweets {
		if tweet.ID == id {
			copied := *tweet
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) ListByOwner(_ context.Context, ownerID string) ([]Tweet, error) {
	tweets := []Tweet{}
	for i := len(repository.tweets) - 1; i >= 0; i-- {
		if repository.tweets[i].OwnerID == ownerID {
			tweets = append(tweets, *repository.tweets[i])
		}
	}
	return tweets, nil
}

func (repository *memoryRepository) Update(_ context.Context, id, ownerID, content string) (*Tweet, error) {
	for _, tweet := range repository.tweets {
		if tweet.ID == id && tweet.OwnerID == ownerID {
			tweet.Content = content
			return tweet, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) Delete(_ context.Context, id, ownerID string) error {
	for i, tweet := range repository.tweets {
		if tweet.ID == id && tweet.OwnerID == ownerID {
			repository.tweets = append(repository.tweets[:i], repository.tweets[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func TestTweetLifecycle(t *testing.T) {
	repository := &memoryRepository{}
	service := NewService(repository)
	ctx := context.Background()

	_, err := service.ListByOwner(ctx, alice)
	assert.Equal(t, "Tweets not found", err.Error())

	first, err := service.Create(ctx, alice, "hello")
	require.NoError(t, err)
	second, err := service.Create(ctx, alice, "again")
	require.NoError(t, err)

	tweets, err := service.ListByOwner(ctx, alice)
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, second.ID, tweets[0].ID)

	_, err = service.Update(ctx, bob, first.ID, "edited by bob")
	assert.True(t, apperr.HasCode(err, "FORBIDDEN"))

	updated, err := service.Update(ctx, alice, first.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	assert.True(t, apperr.HasCode(service.Delete(ctx, bob, first.ID), "FORBIDDEN"))
	require.NoError(t, service.Delete(ctx, alice, first.ID))
	assert.True(t, apperr.HasCode(service.Delete(ctx, alice, first.ID), "NOT_FOUND"))
}

func TestTweetValidation(t *testing.T) {
	service := NewService(&memoryRepository{})
	ctx := context.Background()

	_, err := service.Create(ctx, alice, " ")
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	_, err = service.Update(ctx, alice, "bad-id", "")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)

	_, err = service.ListByOwner(ctx, "bad-id")
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}
