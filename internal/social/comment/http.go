// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// Handler implements the /comments endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /comments.
//
// # Endpoints
//   - GET    /{videoId}     : Comments of a video
//   - POST   /{videoId}     : Add (auth)
//   - PATCH  /c/{commentId} : Edit (auth, owner)
//   - DELETE /c/{commentId} : Delete (auth, owner)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{videoId}", handler.list)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/{videoId}", handler.add)
		protected.Patch("/c/{commentId}", handler.update)
		protected.Delete("/c/{commentId}", handler.delete)
	})

	return router
}

type contentRequest struct {
	Content string `json:"content"`
}

/*
GET /api/v1/comments/{videoId}

Request:
  - Query: page, limit

Response:
  - 200: {items, meta}
  - 404: No comments
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	comments, meta, err := handler.service.CommentsForVideo(
		request.Context(),
		ctxutil.ActorID(request.Context()),
		requestutil.Param(request, FieldVideoID),
		pagination.FromRequest(request),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, comments, meta, "Comments fetched successfully")
}

// POST /api/v1/comments/{videoId}
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
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

	comment, err := handler.service.Add(request.Context(), actorID, requestutil.Param(request, FieldVideoID), input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment, "Comment added successfully")
}

// PATCH /api/v1/comments/c/{commentId}
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

	comment, err := handler.service.Update(request.Context(), actorID, requestutil.Param(request, FieldCommentID), input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, comment, "Comment updated successfully")
}

// DELETE /api/v1/comments/c/{commentId}
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), actorID, requestutil.Param(request, FieldCommentID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{}, "Comment deleted successfully")
}
