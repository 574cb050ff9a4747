// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/apperr"
)

// Service implements the dashboard use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new dashboard [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
ChannelStats evaluates every metric of the owner concurrently.

Description: Each metric writes its own field, so no locking is needed.
The first failing query cancels the others and fails the whole call.
*/
func (service *Service) ChannelStats(ctx context.Context, ownerID string) (*Stats, error) {
	stats := &Stats{}
	group, groupCtx := errgroup.WithContext(ctx)

	for _, metric := range Metrics {
		slot := stats.field(metric)
		group.Go(func() error {
			total, err := service.repository.Count(groupCtx, metric, ownerID)
			if err != nil {
				return err
			}
			*slot = total
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

// ChannelVideos lists every video of the owner, newest first. Empty is NotFound.
func (service *Service) ChannelVideos(context context.Context, ownerID string) ([]video.Video, error) {
	videos, err := service.repository.ChannelVideos(context, ownerID)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, apperr.NotFound("Channel videos")
	}
	return videos, nil
}
