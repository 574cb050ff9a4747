// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/apperr"
)

type like struct{ kind, targetID string }

type memoryRepository struct {
	mu            sync.Mutex
	videos        []video.Video
	tweets        map[string]string // tweet id -> owner
	comments      map[string]string // comment id -> owner
	likes         []like
	subscriptions map[string]int // channel -> subscriber count
	failMetric    Metric
	calls         []Metric
}

func (repository *memoryRepository) Count(ctx context.Context, metric Metric, ownerID string) (int64, error) {
	repository.mu.Lock()
	repository.calls = append(repository.calls, metric)
	repository.mu.Unlock()

	if metric == repository.failMetric {
		return 0, apperr.Internal(errors.New("statement timeout"))
	}

	owns := func(kind, id string) bool {
		switch kind {
		case "video":
			for _, item := range repository.videos {
				if item.ID == id {
					return item.OwnerID == ownerID
				}
			}
		case "tweet":
			return repository.tweets[id] == ownerID
		case "comment":
			return repository.comments[id] == ownerID
		}
		return false
	}
	countLikes := func(kind string) int64 {
		var total int64
		for _, entry := range repository.likes {
			if entry.kind == kind && owns(kind, entry.targetID) {
				total++
			}
		}
		return total
	}

	var total int64
	switch metric {
	case MetricSubscribers:
		total = int64(repository.subscriptions[ownerID])
	case MetricVideos, MetricViews:
		for _, item := range repository.videos {
			if item.OwnerID != ownerID {
				continue
			}
			if metric == MetricVideos {
				total++
			} else {
				total += item.Views
			}
		}
	case MetricVideoLikes:
		total = countLikes("video")
	case MetricTweetLikes:
		total = countLikes("tweet")
	case MetricCommentLikes:
		total = countLikes("comment")
	}
	return total, nil
}

func (repository *memoryRepository) ChannelVideos(_ context.Context, ownerID string) ([]video.Video, error) {
	videos := []video.Video{}
	for _, item := range repository.videos {
		if item.OwnerID == ownerID {
			videos = append(videos, item)
		}
	}
	return videos, nil
}

func TestChannelStats(t *testing.T) {
	repository := &memoryRepository{
		videos: []video.Video{
			{ID: "v1", OwnerID: "alice", Views: 10},
			{ID: "v2", OwnerID: "alice", Views: 5, IsPublished: false},
			{ID: "v3", OwnerID: "bob", Views: 99},
		},
		tweets:   map[string]string{"t1": "alice"},
		comments: map[string]string{"c1": "alice", "c2": "bob"},
		likes: []like{
			{"video", "v1"}, {"video", "v1"}, {"video", "v1"}, {"video", "v2"},
			{"video", "v3"},
			{"tweet", "t1"},
			{"comment", "c1"}, {"comment", "c2"},
		},
		subscriptions: map[string]int{"alice": 3},
	}
	service := NewService(repository)

	t.Run("aggregates", func(t *testing.T) {
		stats, err := service.ChannelStats(context.Background(), "alice")
		require.NoError(t, err)

		assert.Equal(t, &Stats{
			TotalSubscribers:  3,
			TotalVideos:       2,
			TotalViews:        15,
			TotalVideoLikes:   4,
			TotalTweetLikes:   1,
			TotalCommentLikes: 1,
		}, stats)
		assert.ElementsMatch(t, Metrics, repository.calls)
	})

	t.Run("empty_channel_is_zero", func(t *testing.T) {
		stats, err := service.ChannelStats(context.Background(), "carol")
		require.NoError(t, err)
		assert.Equal(t, &Stats{}, stats)
	})

	t.Run("any_fault_fails_the_call", func(t *testing.T) {
		repository.failMetric = MetricTweetLikes
		defer func() { repository.failMetric = "" }()

		stats, err := service.ChannelStats(context.Background(), "alice")
		assert.Nil(t, stats)
		assert.True(t, apperr.HasCode(err, "INTERNAL_ERROR"))
	})
}

func TestChannelVideos(t *testing.T) {
	service := NewService(&memoryRepository{
		videos: []video.Video{{ID: "v1", OwnerID: "alice", IsPublished: false}},
	})

	videos, err := service.ChannelVideos(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, videos, 1)

	_, err = service.ChannelVideos(context.Background(), "bob")
	assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
}
