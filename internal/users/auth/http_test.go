// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
)

func newTestRouter(f *fixture) http.Handler {
	router := chi.NewRouter()
	NewHandler(f.service, requestutil.UploadLimits{Dir: "", MaxBytes: 1 << 20}, testLifetimes).Mount(router)
	return router
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestHandler_LoginSetsHardenedCookies(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "pw")
	router := newTestRouter(f)

	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"pw"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	for _, name := range []string{"accessToken", "refreshToken"} {
		cookie := cookieByName(recorder.Result().Cookies(), name)
		require.NotNil(t, cookie, name)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.NotEmpty(t, cookie.Value)
	}

	var body struct {
		StatusCode int  `json:"statusCode"`
		Success    bool `json:"success"`
		Data       struct {
			User         map[string]any `json:"user"`
			AccessToken  string         `json:"accessToken"`
			RefreshToken string         `json:"refreshToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "alice", body.Data.User["username"])
	assert.NotContains(t, body.Data.User, "passwordHash")
	assert.NotEmpty(t, body.Data.RefreshToken)
}

func TestHandler_RefreshFromBody(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "pw")
	session, err := f.service.Login(t.Context(), "alice", "pw")
	require.NoError(t, err)
	router := newTestRouter(f)

	request := httptest.NewRequest(http.MethodPost, "/refresh-token", strings.NewReader(`{"refreshToken":"`+session.RefreshToken+`"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Replaying the same token is rejected.
	request = httptest.NewRequest(http.MethodPost, "/refresh-token", nil)
	request.AddCookie(&http.Cookie{Name: "refreshToken", Value: session.RefreshToken})
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(newFixture(t))

	for _, path := range []string{"/logout", "/change-password"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, path)
	}
}
