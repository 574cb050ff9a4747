// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/ctxutil"
	"github.com/taibuivan/vidtube/internal/platform/respond"
	"github.com/taibuivan/vidtube/internal/platform/sec"
)

// TokenVerifier resolves a presented access token into the verified actor.
//
// The identity service implements it; it checks the signature and that the
// account still exists.
type TokenVerifier interface {
	VerifyCredential(ctx context.Context, token string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the access token of each request.
//
// # Flow
//  1. Read 'Authorization: Bearer <token>', falling back to the accessToken cookie.
//  2. If absent, the request proceeds as anonymous.
//  3. A bad bearer header is rejected with 401. A bad cookie is ignored so that
//     login and refresh keep working for browsers holding a stale cookie;
//     [RequireAuth] still rejects it on protected routes.
//  4. The verified [*sec.AuthClaims] is injected into the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, fromHeader, err := extractToken(request)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Credential Verification ────────────────────────────────────
			claims, err := verifier.VerifyCredential(request.Context(), token)
			if err != nil {
				if !fromHeader && apperr.HasCode(err, "UNAUTHORIZED") {
					next.ServeHTTP(writer, request)
					return
				}
				if !apperr.IsAppError(err) {
					err = apperr.Unauthorized("Invalid or expired token")
				}
				respond.Error(writer, request, err)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			reportActor(request.Context(), claims.UserID)
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// extractToken returns the presented token and whether it came from the header.
func extractToken(request *http.Request) (string, bool, error) {
	if header := request.Header.Get(constants.HeaderAuthorization); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", true, apperr.Unauthorized("Invalid authorization format")
		}
		return parts[1], true, nil
	}

	if cookie, err := request.Cookie(constants.AccessTokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, false, nil
	}

	return "", false, nil
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
