// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/platform/toggle"
)

const (
	alice   = "0192f3e0-0000-7000-8000-000000000001"
	bob     = "0192f3e0-0000-7000-8000-000000000002"
	draftID = "0192f3e0-0000-7000-8000-0000000000a2"
	videoID = "0192f3e0-0000-7000-8000-0000000000a1"
	tweetID = "0192f3e0-0000-7000-8000-0000000000b1"
	missing = "0192f3e0-0000-7000-8000-0000000000ff"
)

type key struct {
	actor  string
	kind   Kind
	target string
}

type memoryRepository struct {
	mu      sync.Mutex
	targets map[Kind]map[string]bool
	drafts  map[string]string // unpublished video → owner
	likes   map[key]bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		targets: map[Kind]map[string]bool{
			KindVideo: {videoID: true, draftID: true},
			KindTweet: {tweetID: true},
		},
		drafts: map[string]string{draftID: bob},
		likes:  map[key]bool{},
	}
}

func (repository *memoryRepository) TargetExists(_ context.Context, actorID string, kind Kind, targetID string) (bool, error) {
	if owner, ok := repository.drafts[targetID]; ok && owner != actorID {
		return false, nil
	}
	return repository.targets[kind][targetID], nil
}

func (repository *memoryRepository) Remove(_ context.Context, actorID string, kind Kind, targetID string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	k := key{actorID, kind, targetID}
	if !repository.likes[k] {
		return false, nil
	}
	delete(repository.likes, k)
	return true, nil
}

func (repository *memoryRepository) Insert(_ context.Context, actorID string, kind Kind, targetID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.likes[key{actorID, kind, targetID}] = true
	return nil
}

func (repository *memoryRepository) LikedVideos(_ context.Context, actorID string) ([]LikedVideo, error) {
	videos := []LikedVideo{}
	for k := range repository.likes {
		if k.actor == actorID && k.kind == KindVideo {
			videos = append(videos, LikedVideo{ID: k.target})
		}
	}
	return videos, nil
}

func TestToggle_RoundTrip(t *testing.T) {
	repository := newMemoryRepository()
	service := NewService(repository)
	ctx := context.Background()

	videos, err := service.LikedVideos(ctx, alice)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)

	result, err := service.ToggleVideoLike(ctx, alice, videoID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, toggle.Added, result.Outcome)

	videos, err = service.LikedVideos(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, videos, 1)

	result, err = service.ToggleVideoLike(ctx, alice, videoID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Empty(t, repository.likes)
}

func TestToggle_Failures(t *testing.T) {
	service := NewService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.ToggleCommentLike(ctx, alice, missing)
	assert.Equal(t, "Comment not found", err.Error())

	_, err = service.ToggleTweetLike(ctx, alice, "65a1c2d3e4f5a6b7c8d9e0f1")
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))
}

func TestToggle_DraftVisibleToOwnerOnly(t *testing.T) {
	repository := newMemoryRepository()
	service := NewService(repository)
	ctx := context.Background()

	_, err := service.ToggleVideoLike(ctx, alice, draftID)
	assert.Equal(t, "Video not found", err.Error())
	assert.Empty(t, repository.likes)

	result, err := service.ToggleVideoLike(ctx, bob, draftID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
}

func TestHandler_StatusFollowsOutcome(t *testing.T) {
	router := NewHandler(NewService(newMemoryRepository())).Routes()

	send := func() (int, map[string]any) {
		request := httptest.NewRequest(http.MethodPost, "/toggle/t/"+tweetID, nil)
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{UserID: alice}))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		return recorder.Code, body
	}

	status, body := send()
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Tweet like added", body["message"])

	status, body = send()
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Tweet like removed", body["message"])
}

func TestHandler_RequiresAuth(t *testing.T) {
	router := NewHandler(NewService(newMemoryRepository())).Routes()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/videos", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
