// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package dashboard_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/core/dashboard"
	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/postgres/pgtest"
	"github.com/taibuivan/vidtube/internal/social/comment"
	"github.com/taibuivan/vidtube/internal/social/like"
	"github.com/taibuivan/vidtube/internal/social/subscription"
	"github.com/taibuivan/vidtube/internal/social/tweet"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

var testDatabase *pgtest.Database

func TestMain(m *testing.M) {
	database, err := pgtest.Start(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "start database: %v\n", err)
		os.Exit(1)
	}
	testDatabase = database

	code := m.Run()

	database.Close()
	os.Exit(code)
}

/*
TestChannelStats_AgainstDatabase seeds a channel with two videos, one tweet,
one comment and a few likes, then checks every counter.
*/
func TestChannelStats_AgainstDatabase(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testDatabase.Reset(ctx))

	pool := testDatabase.Pool
	likes := like.NewRepository(pool)
	subscriptions := subscription.NewRepository(pool)
	tweets := tweet.NewRepository(pool)
	comments := comment.NewRepository(pool)
	service := dashboard.NewService(dashboard.NewRepository(pool))

	channel, err := testDatabase.SeedAccount(ctx, "channel")
	require.NoError(t, err)
	fans := make([]string, 3)
	for i := range fans {
		fans[i], err = testDatabase.SeedAccount(ctx, fmt.Sprintf("fan%d", i))
		require.NoError(t, err)
	}

	first, err := testDatabase.SeedVideo(ctx, channel, "First", 120, true)
	require.NoError(t, err)
	second, err := testDatabase.SeedVideo(ctx, channel, "Second", 30, false)
	require.NoError(t, err)

	post := &tweet.Tweet{ID: uuid.New(), Content: "new upload soon", OwnerID: channel}
	require.NoError(t, tweets.Create(ctx, post))
	reply := &comment.Comment{ID: uuid.New(), Content: "thanks for watching", VideoID: first, OwnerID: channel}
	require.NoError(t, comments.Create(ctx, reply))

	for _, fan := range fans {
		require.NoError(t, likes.Insert(ctx, fan, like.KindVideo, first))
		require.NoError(t, subscriptions.Insert(ctx, fan, channel))
	}
	require.NoError(t, likes.Insert(ctx, fans[0], like.KindVideo, second))
	require.NoError(t, likes.Insert(ctx, fans[0], like.KindTweet, post.ID))
	require.NoError(t, likes.Insert(ctx, fans[1], like.KindComment, reply.ID))

	// A duplicate insert is ignored.
	require.NoError(t, likes.Insert(ctx, fans[0], like.KindVideo, first))

	stats, err := service.ChannelStats(ctx, channel)
	require.NoError(t, err)

	assert.Equal(t, dashboard.Stats{
		TotalSubscribers:  3,
		TotalVideos:       2,
		TotalViews:        150,
		TotalVideoLikes:   4,
		TotalTweetLikes:   1,
		TotalCommentLikes: 1,
	}, *stats)

	t.Run("empty_channel_is_all_zero", func(t *testing.T) {
		stats, err := service.ChannelStats(ctx, fans[2])
		require.NoError(t, err)
		assert.Equal(t, dashboard.Stats{}, *stats)
	})

	t.Run("channel_videos_include_drafts", func(t *testing.T) {
		videos, err := service.ChannelVideos(ctx, channel)
		require.NoError(t, err)
		assert.Len(t, videos, 2)

		_, err = service.ChannelVideos(ctx, fans[2])
		assert.True(t, apperr.HasCode(err, "NOT_FOUND"))
	})
}
