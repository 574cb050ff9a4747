// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

// Handler implements the /playlists endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new playlist [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /playlists.
//
// # Endpoints
//   - POST   /                             : Create (auth)
//   - GET    /user/{userId}                : Playlists of a user
//   - GET    /{playlistId}                 : Playlist with videos
//   - PATCH  /{playlistId}                 : Edit (auth, owner)
//   - DELETE /{playlistId}                 : Delete (auth, owner)
//   - PATCH  /add/{videoId}/{playlistId}   : Add a video (auth, owner)
//   - PATCH  /remove/{videoId}/{playlistId}: Remove a video (auth, owner)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/user/{userId}", handler.listByOwner)
	router.Get("/{playlistId}", handler.getByID)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/", handler.create)
		protected.Patch("/{playlistId}", handler.update)
		protected.Delete("/{playlistId}", handler.delete)
		protected.Patch("/add/{videoId}/{playlistId}", handler.addVideo)
		protected.Patch("/remove/{videoId}/{playlistId}", handler.removeVideo)
	})

	return router
}

type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// POST /api/v1/playlists
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input playlistRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.Create(request.Context(), actorID, input.Name, input.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, playlist, "Playlist created successfully")
}

// GET /api/v1/playlists/user/{userId}
func (handler *Handler) listByOwner(writer http.ResponseWriter, request *http.Request) {
	playlists, err := handler.service.ListByOwner(request.Context(), requestutil.Param(request, FieldUserID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlists, "User playlists fetched successfully")
}

// GET /api/v1/playlists/{playlistId}
func (handler *Handler) getByID(writer http.ResponseWriter, request *http.Request) {
	playlist, err := handler.service.GetByID(
		request.Context(),
		ctxutil.ActorID(request.Context()),
		requestutil.Param(request, FieldPlaylistID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Playlist fetched successfully")
}

// PATCH /api/v1/playlists/{playlistId}
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input playlistRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := handler.service.Update(request.Context(), actorID, requestutil.Param(request, FieldPlaylistID), input.Name, input.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, "Playlist updated successfully")
}

// DELETE /api/v1/playlists/{playlistId}
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), actorID, requestutil.Param(request, FieldPlaylistID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{}, "Playlist deleted successfully")
}

// PATCH /api/v1/playlists/add/{videoId}/{playlistId}
func (handler *Handler) addVideo(writer http.ResponseWriter, request *http.Request) {
	handler.changeVideos(writer, request, handler.service.AddVideo, "Video added to playlist successfully")
}

// PATCH /api/v1/playlists/remove/{videoId}/{playlistId}
func (handler *Handler) removeVideo(writer http.ResponseWriter, request *http.Request) {
	handler.changeVideos(writer, request, handler.service.RemoveVideo, "Video removed from playlist successfully")
}

type videoChange func(ctx context.Context, actorID, playlistID, videoID string) (*Playlist, error)

func (handler *Handler) changeVideos(
	writer http.ResponseWriter,
	request *http.Request,
	change videoChange,
	message string,
) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	playlist, err := change(
		request.Context(),
		actorID,
		requestutil.Param(request, FieldPlaylistID),
		requestutil.Param(request, FieldVideoID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, playlist, message)
}
