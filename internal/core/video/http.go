// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// Handler implements the /videos endpoints.
type Handler struct {
	service *Service
	uploads requestutil.UploadLimits
}

// NewHandler constructs a new video [Handler].
func NewHandler(service *Service, uploads requestutil.UploadLimits) *Handler {
	return &Handler{service: service, uploads: uploads}
}

// Routes returns the router for /videos.
//
// # Endpoints
//   - GET    /                       : Feed (auth)
//   - POST   /                       : Publish (auth, multipart)
//   - GET    /{videoId}              : Single video (viewer optional)
//   - PATCH  /{videoId}              : Edit (auth, owner)
//   - DELETE /{videoId}              : Delete (auth, owner)
//   - PATCH  /toggle/publish/{videoId}: Flip publication (auth, owner)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{videoId}", handler.getVideo)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/", handler.feed)
		protected.Post("/", handler.publish)
		protected.Patch("/{videoId}", handler.updateVideo)
		protected.Delete("/{videoId}", handler.deleteVideo)
		protected.Patch("/toggle/publish/{videoId}", handler.togglePublish)
	})

	return router
}

type updateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

/*
GET /api/v1/videos

Request:
  - Query: page, limit, query, sortBy, sortType, userId

Response:
  - 200: {items, meta}
  - 400: Invalid sort or userId
  - 404: Videos not found
*/
func (handler *Handler) feed(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := request.URL.Query()
	videos, meta, err := handler.service.Feed(request.Context(), FeedQuery{
		Query:    strings.TrimSpace(params.Get(FieldQuery)),
		SortBy:   params.Get(FieldSortBy),
		SortType: params.Get(FieldSortType),
		UserID:   params.Get(FieldUserID),
		ViewerID: actorID,
		Page:     pagination.FromRequest(request),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, videos, meta, "Videos fetched successfully")
}

/*
POST /api/v1/videos

Request:
  - Form: title, description
  - Files: videoFile, thumbnail

Response:
  - 201: Video
  - 400: Missing field or file
  - 500: Probe or upload failed
*/
func (handler *Handler) publish(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	uploads, err := requestutil.ParseUploads(writer, request, handler.uploads, FieldVideoFile, FieldThumbnail)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer uploads.Cleanup()

	video, err := handler.service.Publish(request.Context(), actorID, PublishInput{
		Title:         requestutil.FormValue(request, FieldTitle),
		Description:   requestutil.FormValue(request, FieldDescription),
		VideoPath:     uploads.Path(FieldVideoFile),
		ThumbnailPath: uploads.Path(FieldThumbnail),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, video, "Video published successfully")
}

// GET /api/v1/videos/{videoId}
func (handler *Handler) getVideo(writer http.ResponseWriter, request *http.Request) {
	video, err := handler.service.GetVideo(
		request.Context(),
		requestutil.Param(request, FieldVideoID),
		ctxutil.ActorID(request.Context()),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, video, "Video fetched successfully")
}

/*
PATCH /api/v1/videos/{videoId}

Description: Accepts a multipart form (title, description, thumbnail) or a
JSON body with title and description.

Response:
  - 200: Video
  - 400: Nothing to update
  - 403: Not the owner
  - 404: Video not found
*/
func (handler *Handler) updateVideo(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateVideoRequest
	var uploads *requestutil.Uploads

	if strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data") {
		uploads, err = requestutil.ParseUploads(writer, request, handler.uploads, FieldThumbnail)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		defer uploads.Cleanup()
		input.Title = requestutil.FormValue(request, FieldTitle)
		input.Description = requestutil.FormValue(request, FieldDescription)
	} else if err := requestutil.DecodeOptionalJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.UpdateVideo(
		request.Context(),
		actorID,
		requestutil.Param(request, FieldVideoID),
		strings.TrimSpace(input.Title),
		strings.TrimSpace(input.Description),
		uploads.Path(FieldThumbnail),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, video, "Video updated successfully")
}

// DELETE /api/v1/videos/{videoId}
func (handler *Handler) deleteVideo(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteVideo(request.Context(), actorID, requestutil.Param(request, FieldVideoID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{}, "Video deleted successfully")
}

// PATCH /api/v1/videos/toggle/publish/{videoId}
func (handler *Handler) togglePublish(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	video, err := handler.service.TogglePublishStatus(request.Context(), actorID, requestutil.Param(request, FieldVideoID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, video, "Publish status toggled successfully")
}
