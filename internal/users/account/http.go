// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

// Handler implements the profile endpoints under /users.
type Handler struct {
	service *Service
	uploads requestutil.UploadLimits
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service, uploads requestutil.UploadLimits) *Handler {
	return &Handler{service: service, uploads: uploads}
}

// Mount registers the profile routes on the shared /users router.
func (handler *Handler) Mount(router chi.Router) {
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/c/{username}", handler.channelProfile)
		protected.Get("/current-user", handler.currentUser)
		protected.Patch("/update-account", handler.updateAccount)
		protected.Patch("/avatar", handler.updateAvatar)
		protected.Patch("/cover-image", handler.updateCoverImage)
		protected.Get("/history", handler.watchHistory)
	})
}

type updateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

/*
GET /api/v1/users/current-user

Response:
  - 200: Account
  - 401: Authentication required
*/
func (handler *Handler) currentUser(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.CurrentUser(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account, "User fetched successfully")
}

/*
PATCH /api/v1/users/update-account

Request:
  - Body: {fullName?, email?} (at least one)

Response:
  - 200: Account
  - 400: Both empty or malformed email
  - 409: Email taken
*/
func (handler *Handler) updateAccount(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateAccountRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.UpdateAccount(request.Context(), actorID, input.FullName, input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account, "Account details updated successfully")
}

// PATCH /api/v1/users/avatar (multipart field "avatar").
func (handler *Handler) updateAvatar(writer http.ResponseWriter, request *http.Request) {
	handler.replaceImage(writer, request, auth.FieldAvatar, handler.service.UpdateAvatar, "Avatar updated successfully")
}

// PATCH /api/v1/users/cover-image (multipart field "coverImage").
func (handler *Handler) updateCoverImage(writer http.ResponseWriter, request *http.Request) {
	handler.replaceImage(writer, request, auth.FieldCoverImage, handler.service.UpdateCoverImage, "Cover image updated successfully")
}

type imageUpdater func(ctx context.Context, actorID, localPath string) (*auth.Account, error)

func (handler *Handler) replaceImage(writer http.ResponseWriter, request *http.Request, field string, update imageUpdater, message string) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	uploads, err := requestutil.ParseUploads(writer, request, handler.uploads, field)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer uploads.Cleanup()

	account, err := update(request.Context(), actorID, uploads.Path(field))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, account, message)
}

/*
GET /api/v1/users/c/{username}

Description: Channel page as seen by the authenticated viewer, including
whether the viewer is subscribed.

Response:
  - 200: ChannelProfile
  - 401: Authentication required
  - 404: Channel not found
*/
func (handler *Handler) channelProfile(writer http.ResponseWriter, request *http.Request) {
	viewerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.ChannelProfile(request.Context(), requestutil.Param(request, "username"), viewerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile, "Channel fetched successfully")
}

// GET /api/v1/users/history
func (handler *Handler) watchHistory(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	history, err := handler.service.WatchHistory(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, history, "Watch history fetched successfully")
}
