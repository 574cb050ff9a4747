// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"strings"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ownership"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/pagination"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Service implements the comment use cases.
type Service struct {
	repository Repository
}

// NewService constructs a new comment [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

/*
CommentsForVideo returns one page of comments, newest first. Comments of an
unpublished video are listed only for its owner.

Returns:
  - []VideoComment: Non-empty page
  - pagination.Meta: Page metadata
  - error: ValidationError (malformed id), NotFound (no comments on this page)
*/
func (service *Service) CommentsForVideo(context context.Context, viewerID, videoID string, page pagination.Params) ([]VideoComment, pagination.Meta, error) {
	if err := validate.ID(FieldVideoID, videoID); err != nil {
		return nil, pagination.Meta{}, err
	}

	comments, total, err := service.repository.ForVideo(context, videoID, viewerID, page)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	if len(comments) == 0 {
		return nil, pagination.Meta{}, apperr.NotFound("Comments")
	}

	return comments, pagination.NewMeta(page.Page, page.Limit, total), nil
}

// Add posts a comment on a video the actor can see.
func (service *Service) Add(context context.Context, actorID, videoID, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if err := validateInput(FieldVideoID, videoID, content); err != nil {
		return nil, err
	}

	exists, err := service.repository.VideoExists(context, videoID, actorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Video")
	}

	comment := &Comment{
		ID:      uuid.New(),
		Content: content,
		VideoID: videoID,
		OwnerID: actorID,
	}
	if err := service.repository.Create(context, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update replaces the content of the actor's comment.
func (service *Service) Update(context context.Context, actorID, id, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if err := validateInput(FieldCommentID, id, content); err != nil {
		return nil, err
	}

	if _, err := service.owned(context, actorID, id); err != nil {
		return nil, err
	}

	comment, err := service.repository.Update(context, id, actorID, content)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("Comment")
	}
	return comment, err
}

// Delete removes the actor's comment and its likes.
func (service *Service) Delete(context context.Context, actorID, id string) error {
	if err := validate.ID(FieldCommentID, id); err != nil {
		return err
	}

	if _, err := service.owned(context, actorID, id); err != nil {
		return err
	}

	err := service.repository.Delete(context, id, actorID)
	if apperr.HasCode(err, "NOT_FOUND") {
		return apperr.NotFound("Comment")
	}
	return err
}

func (service *Service) owned(context context.Context, actorID, id string) (*Comment, error) {
	comment, err := service.repository.FindByID(context, id)
	if apperr.HasCode(err, "NOT_FOUND") {
		return nil, apperr.NotFound("Comment")
	}
	if err != nil {
		return nil, err
	}
	if err := ownership.Ensure(actorID, comment, "comment"); err != nil {
		return nil, err
	}
	return comment, nil
}

func validateInput(idField, id, content string) error {
	return (&validate.Validator{}).
		UUID(idField, id).
		Required(FieldContent, content).
		Err()
}
