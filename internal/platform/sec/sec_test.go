// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/sec"
)

func newTokenService(t *testing.T, issuer string) *sec.TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return sec.NewTokenServiceFromKey(key, issuer)
}

/*
TestTokenService_RoundTrip issues and verifies both token types.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(t, "vidtube.test")

	access, err := service.GenerateAccessToken(sec.Identity{
		UserID:   "user-1",
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Liddell",
	}, time.Minute)
	require.NoError(t, err)

	refresh, err := service.GenerateRefreshToken("user-1", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	claims, err := service.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice Liddell", claims.FullName)

	refreshClaims, err := service.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserID)
	assert.Empty(t, refreshClaims.Username)
}

/*
TestTokenService_Rejections covers the failure modes of verification.
*/
func TestTokenService_Rejections(t *testing.T) {
	service := newTokenService(t, "vidtube.test")
	other := newTokenService(t, "vidtube.test")

	access, err := service.GenerateAccessToken(sec.Identity{UserID: "user-1"}, time.Minute)
	require.NoError(t, err)
	refresh, err := service.GenerateRefreshToken("user-1", time.Minute)
	require.NoError(t, err)
	expired, err := service.GenerateRefreshToken("user-1", -time.Minute)
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken(sec.Identity{UserID: "user-1"}, time.Minute)
	require.NoError(t, err)

	t.Run("refresh_as_access", func(t *testing.T) {
		_, err := service.VerifyAccessToken(refresh)
		assert.ErrorIs(t, err, sec.ErrWrongTokenType)
	})

	t.Run("access_as_refresh", func(t *testing.T) {
		_, err := service.VerifyRefreshToken(access)
		assert.ErrorIs(t, err, sec.ErrWrongTokenType)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := service.VerifyRefreshToken(expired)
		assert.Error(t, err)
	})

	t.Run("foreign_key", func(t *testing.T) {
		_, err := service.VerifyAccessToken(foreign)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.VerifyAccessToken("not.a.jwt")
		assert.Error(t, err)
	})
}

func TestTokens_AreUnique(t *testing.T) {
	service := newTokenService(t, "vidtube.test")

	first, err := service.GenerateRefreshToken("user-1", time.Hour)
	require.NoError(t, err)
	second, err := service.GenerateRefreshToken("user-1", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, sec.HashToken(first), sec.HashToken(second))
}

func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, sec.CheckPasswordHash("correct horse", hash))
	assert.False(t, sec.CheckPasswordHash("battery staple", hash))
}
