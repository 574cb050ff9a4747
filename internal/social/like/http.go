// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

// Handler implements the /likes endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new like [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /likes. Every route requires auth.
//
// A toggle answers 201 when the like was added and 200 when it was removed.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/toggle/v/{videoId}", handler.toggleHandler(FieldVideoID, handler.service.ToggleVideoLike))
	router.Post("/toggle/c/{commentId}", handler.toggleHandler(FieldCommentID, handler.service.ToggleCommentLike))
	router.Post("/toggle/t/{tweetId}", handler.toggleHandler(FieldTweetID, handler.service.ToggleTweetLike))
	router.Get("/videos", handler.likedVideos)

	return router
}

type toggleFunc func(ctx context.Context, actorID, targetID string) (*Result, error)

func (handler *Handler) toggleHandler(param string, toggleLike toggleFunc) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		actorID, err := requestutil.RequiredUserID(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		result, err := toggleLike(request.Context(), actorID, requestutil.Param(request, param))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		message := result.Kind.noun() + " like removed"
		if result.Liked {
			message = result.Kind.noun() + " like added"
		}
		respond.Success(writer, result.Outcome.StatusCode(), result, message)
	}
}

// GET /api/v1/likes/videos
func (handler *Handler) likedVideos(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	videos, err := handler.service.LikedVideos(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, videos, "Liked videos fetched successfully")
}
