// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

/*
TestSuccessEnvelope checks the success body shape.
*/
func TestSuccessEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Created(recorder, map[string]string{"id": "abc"}, "Tweet created")

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, float64(201), body["statusCode"])
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Tweet created", body["message"])
	assert.Equal(t, "abc", body["data"].(map[string]any)["id"])
}

/*
TestErrorEnvelope checks that every failure kind produces the error body with
an errors array and the matching status.
*/
func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErrors int
		wantMsg    string
	}{
		{"validation", apperr.ValidationError("Validation failed", apperr.FieldError{Field: "title", Message: "This field is required"}), 400, 1, "Validation failed"},
		{"auth", apperr.Unauthorized("Invalid credentials"), 401, 0, "Invalid credentials"},
		{"forbidden", apperr.Forbidden("Not yours"), 403, 0, "Not yours"},
		{"not_found", apperr.NotFound("Video"), 404, 0, "Video not found"},
		{"conflict", apperr.Conflict("Username taken"), 409, 0, "Username taken"},
		{"upstream", apperr.Upstream("Upload failed", errors.New("s3 down")), 500, 0, "Upload failed"},
		{"raw_error_hidden", errors.New("pq: relation does not exist"), 500, 0, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.StatusCode)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.NotNil(t, body.Errors)
			assert.Len(t, body.Errors, tt.wantErrors)
		})
	}
}
