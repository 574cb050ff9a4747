// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Envelope
//
// Every success body is `{statusCode, data, message, success: true}` and every
// failure body is `{statusCode, success: false, message, errors: []}`, with the
// HTTP status equal to statusCode. Clients parse a single shape everywhere.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// SuccessEnvelope is the JSON envelope for every successful response.
type SuccessEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	StatusCode int                 `json:"statusCode"`
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Errors     []apperr.FieldError `json:"errors"`
}

// Page is the data payload of paginated list responses.
type Page struct {
	Items any             `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Success writes data wrapped in the success envelope with the given status.
func Success(writer http.ResponseWriter, statusCode int, data any, message string) {
	JSON(writer, statusCode, SuccessEnvelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// OK writes a 200 OK success envelope.
func OK(writer http.ResponseWriter, data any, message string) {
	Success(writer, http.StatusOK, data, message)
}

// Created writes a 201 Created success envelope.
func Created(writer http.ResponseWriter, data any, message string) {
	Success(writer, http.StatusCreated, data, message)
}

// Paginated writes a 200 OK envelope whose data carries the items and a metadata block.
func Paginated(writer http.ResponseWriter, items any, metadata pagination.Meta, message string) {
	OK(writer, Page{Items: items, Meta: metadata}, message)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	logger := ctxutil.GetLogger(request.Context())
	requestID := ctxutil.GetRequestID(request.Context())

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", requestID),
			slog.Any("cause", appError.Cause),
		)
	}

	details := appError.Details
	if details == nil {
		details = []apperr.FieldError{}
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		StatusCode: appError.HTTPStatus,
		Success:    false,
		Message:    appError.Message,
		Errors:     details,
	})
}
