// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

// Handler implements the /subscriptions endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new subscription [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /subscriptions. Every route requires auth.
//
// # Endpoints
//   - POST /c/{channelId}    : Toggle (201 subscribed, 200 unsubscribed)
//   - GET  /c/{channelId}    : Subscribers of a channel
//   - GET  /u/{subscriberId} : Channels followed by an account
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/c/{channelId}", handler.toggle)
	router.Get("/c/{channelId}", handler.subscribers)
	router.Get("/u/{subscriberId}", handler.subscribedChannels)

	return router
}

func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Toggle(request.Context(), actorID, requestutil.Param(request, FieldChannelID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	message := "Unsubscribed successfully"
	if result.Subscribed {
		message = "Subscribed successfully"
	}
	respond.Success(writer, result.Outcome.StatusCode(), result, message)
}

func (handler *Handler) subscribers(writer http.ResponseWriter, request *http.Request) {
	subscribers, err := handler.service.Subscribers(request.Context(), requestutil.Param(request, FieldChannelID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, subscribers, "Subscribers fetched successfully")
}

func (handler *Handler) subscribedChannels(writer http.ResponseWriter, request *http.Request) {
	channels, err := handler.service.SubscribedChannels(request.Context(), requestutil.Param(request, FieldSubscriberID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, channels, "Subscribed channels fetched successfully")
}
