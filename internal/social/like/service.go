// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/toggle"
	"github.com/taibuivan/vidtube/internal/platform/validate"
)

// Service implements the like use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new like [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// ToggleVideoLike likes or unlikes a video.
func (service *Service) ToggleVideoLike(context context.Context, actorID, videoID string) (*Result, error) {
	return service.toggle(context, actorID, KindVideo, FieldVideoID, videoID)
}

// ToggleCommentLike likes or unlikes a comment.
func (service *Service) ToggleCommentLike(context context.Context, actorID, commentID string) (*Result, error) {
	return service.toggle(context, actorID, KindComment, FieldCommentID, commentID)
}

// ToggleTweetLike likes or unlikes a tweet.
func (service *Service) ToggleTweetLike(context context.Context, actorID, tweetID string) (*Result, error) {
	return service.toggle(context, actorID, KindTweet, FieldTweetID, tweetID)
}

// LikedVideos lists the actor's liked videos. An empty list is valid.
func (service *Service) LikedVideos(context context.Context, actorID string) ([]LikedVideo, error) {
	return service.repository.LikedVideos(context, actorID)
}

/*
toggle flips the like of one target.

Returns:
  - *Result: State after the toggle
  - error: ValidationError (malformed id), NotFound (target absent or not visible)
*/
func (service *Service) toggle(ctx context.Context, actorID string, kind Kind, field, targetID string) (*Result, error) {
	if err := validate.ID(field, targetID); err != nil {
		return nil, err
	}

	exists, err := service.repository.TargetExists(ctx, actorID, kind, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound(kind.noun())
	}

	outcome, err := toggle.Flip(ctx, toggle.Funcs{
		RemoveFunc: func(ctx context.Context) (bool, error) {
			return service.repository.Remove(ctx, actorID, kind, targetID)
		},
		InsertFunc: func(ctx context.Context) error {
			return service.repository.Insert(ctx, actorID, kind, targetID)
		},
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:     kind,
		TargetID: targetID,
		Liked:    outcome.Active(),
		Outcome:  outcome,
	}, nil
}
