// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/users/auth"
)

// newTestRouter mounts the profile routes behind a stand-in for the
// authentication middleware that trusts actorID when it is non-empty.
func newTestRouter(t *testing.T, service *Service, actorID string) http.Handler {
	t.Helper()
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if actorID != "" {
				claims := &sec.AuthClaims{UserID: actorID}
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
			}
			next.ServeHTTP(writer, request)
		})
	})
	NewHandler(service, requestutil.UploadLimits{Dir: t.TempDir(), MaxBytes: 1 << 20}).Mount(router)
	return router
}

func TestChannelProfileRoute(t *testing.T) {
	alice := &auth.Account{ID: "a", Username: "alice", Email: "alice@example.com"}
	bob := &auth.Account{ID: "b", Username: "bob"}
	repository := newMemoryRepository(alice, bob)
	repository.subscriptions[[2]string{"b", "a"}] = true
	service := newTestService(repository, &memoryStorage{})

	t.Run("anonymous_is_rejected", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newTestRouter(t, service, "").ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/c/alice", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "alice@example.com")
	})

	t.Run("viewer_sees_subscription", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newTestRouter(t, service, "b").ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/c/alice", nil))
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data ChannelProfile `json:"data"`
		}
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.Equal(t, "alice", body.Data.Username)
		assert.Equal(t, 1, body.Data.SubscribersCount)
		assert.True(t, body.Data.IsSubscribed)
	})
}
