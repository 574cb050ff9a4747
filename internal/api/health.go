// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(ctx context.Context) error
}

// HealthHandlers are the probe endpoints mounted by [NewServer].
type HealthHandlers struct {
	Liveness    http.HandlerFunc
	Readiness   http.HandlerFunc
	Healthcheck http.HandlerFunc
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health, /ready and /api/v1/healthcheck handlers.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) HealthHandlers {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return HealthHandlers{
		Liveness:    handler.liveness,
		Readiness:   handler.readiness,
		Healthcheck: handler.healthcheck,
	}
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	}, "Alive")
}

// healthcheck handles GET /api/v1/healthcheck.
func (handler *healthHandler) healthcheck(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "OK"}, "Service is running smoothly")
}

// readiness handles GET /ready (Readiness probe).
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 1)
	isSystemReady := true

	if handler.dependencies.CheckDatabase != nil {
		result := checkResult{Name: "postgres", IsOK: true}
		if err := handler.dependencies.CheckDatabase(request.Context()); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", "postgres"), slog.Any("error", err))
		}
		results = append(results, result)
	}

	payload := map[string]any{
		constants.FieldStatus: "ready",
		constants.FieldChecks: results,
	}

	if !isSystemReady {
		payload[constants.FieldStatus] = "degraded"
		respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{
			StatusCode: http.StatusServiceUnavailable,
			Data:       payload,
			Message:    "Service is degraded",
			Success:    false,
		})
		return
	}

	respond.OK(writer, payload, "Ready")
}
