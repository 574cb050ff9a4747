// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dashboard serves the channel owner's statistics and video list.
package dashboard

import (
	"context"

	"github.com/taibuivan/vidtube/internal/core/video"
)

// Metric names one channel counter.
type Metric string

const (
	MetricSubscribers  Metric = "subscribers"
	MetricVideos       Metric = "videos"
	MetricViews        Metric = "views"
	MetricVideoLikes   Metric = "video_likes"
	MetricTweetLikes   Metric = "tweet_likes"
	MetricCommentLikes Metric = "comment_likes"
)

// Metrics lists every counter reported by [Stats].
var Metrics = []Metric{
	MetricSubscribers,
	MetricVideos,
	MetricViews,
	MetricVideoLikes,
	MetricTweetLikes,
	MetricCommentLikes,
}

// Stats aggregates the counters of one channel. Zero values are valid.
type Stats struct {
	TotalSubscribers  int64 `json:"totalSubscribers"`
	TotalVideos       int64 `json:"totalVideos"`
	TotalViews        int64 `json:"totalViews"`
	TotalVideoLikes   int64 `json:"totalVideoLikes"`
	TotalTweetLikes   int64 `json:"totalTweetLikes"`
	TotalCommentLikes int64 `json:"totalCommentLikes"`
}

// field returns the slot of s that holds metric.
func (s *Stats) field(metric Metric) *int64 {
	switch metric {
	case MetricSubscribers:
		return &s.TotalSubscribers
	case MetricVideos:
		return &s.TotalVideos
	case MetricViews:
		return &s.TotalViews
	case MetricVideoLikes:
		return &s.TotalVideoLikes
	case MetricTweetLikes:
		return &s.TotalTweetLikes
	case MetricCommentLikes:
		return &s.TotalCommentLikes
	}
	return nil
}

// Repository reads channel aggregates.
type Repository interface {
	// Count evaluates one metric for the channel.
	Count(ctx context.Context, metric Metric, ownerID string) (int64, error)

	// ChannelVideos returns every video of the owner, newest first.
	ChannelVideos(ctx context.Context, ownerID string) ([]video.Video, error)
}
