// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import (
	"context"
	"strings"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ownership"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Service implements the tweet use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new tweet [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// Create publishes a tweet for the actor.
func (service *Service) Create(context context.Context, actorID, content string) (*Tweet, error) {
	content = strings.TrimSpace(content)
	if err := (&validate.Validator{}).Required(FieldContent, content).Err(); err != nil {
		return nil, err
	}

	tweet := &Tweet{ID: uuid.New(), Content: content, OwnerID: actorID}
	if err := service.repository.Create(context, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// ListByOwner returns a channel's tweets, newest first. Empty is NotFound.
func (service *Service) ListByOwner(context context.Context, userID string) ([]Tweet, error) {
	if err := validate.ID(FieldUserID, userID); err != nil {
		return nil, err
	}

	tweets, err := service.repository.ListByOwner(context, userID)
	if err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return nil, apperr.NotFound("Tweets")
	}
	return tweets, nil
}

// Update replaces the content of the actor's tweet.
func (service *Service) Update(context context.Context, actorID, id, content string) (*Tweet, error) {
	content = strings.TrimSpace(content)
	err := (&validate.Validator{}).
		UUID(FieldTweetID, id).
		Required(FieldContent, content).
		Err()
	if err != nil {
		return nil, err
	}

	if err := service.ensureOwner(context, actorID, id); err != nil {
		return nil, err
	}

	tweet, err := service.repository.Update(context, id, actorID, content)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("Tweet")
	}
	return tweet, err
}

// Delete removes the actor's tweet and its likes.
func (service *Service) Delete(context context.Context, actorID, id string) error {
	if err := validate.ID(FieldTweetID, id); err != nil {
		return err
	}

	if err := service.ensureOwner(context, actorID, id); err != nil {
		return err
	}

	err := service.repository.Delete(context, id, actorID)
	if apperr.HasCode(err, "NOT_FOUND") {
		return apperr.NotFound("Tweet")
	}
	return err
}

func (service *Service) ensureOwner(context context.Context, actorID, id string) error {
	tweet, err := service.repository.FindByID(context, id)
	if apperr.HasCode(err, "NOT_FOUND") {
		return apperr.NotFound("Tweet")
	}
	if err != nil {
		return err
	}
	return ownership.Ensure(actorID, tweet, "tweet")
}
