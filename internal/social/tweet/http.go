// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

// Handler implements the /tweets endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new tweet [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /tweets.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/user/{userId}", handler.listByOwner)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.create)
		protected.Patch("/{tweetId}", handler.update)
		protected.Delete("/{tweetId}", handler.delete)
	})

	return router
}

type contentRequest struct {
	Content string `json:"content"`
}

// POST /api/v1/tweets
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input contentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tweet, err := handler.service.Create(request.Context(), actorID, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, tweet, "Tweet created successfully")
}

// GET /api/v1/tweets/user/{userId}
func (handler *Handler) listByOwner(writer http.ResponseWriter, request *http.Request) {
	tweets, err := handler.service.ListByOwner(request.Context(), requestutil.Param(request, FieldUserID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tweets, "Tweets fetched successfully")
}

// PATCH /api/v1/tweets/{tweetId}
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input contentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	tweet, err := handler.service.Update(request.Context(), actorID, requestutil.Param(request, FieldTweetID), input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tweet, "Tweet updated successfully")
}

// DELETE /api/v1/tweets/{tweetId}
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), actorID, requestutil.Param(request, FieldTweetID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{}, "Tweet deleted successfully")
}
