// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/vidtube/internal/platform/constants"
	"github.com/taibuivan/vidtube/internal/platform/middleware"
	requestutil "github.com/taibuivan/vidtube/internal/platform/request"
	"github.com/taibuivan/vidtube/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the credential endpoints under /users.
type Handler struct {
	service   *Service
	uploads   requestutil.UploadLimits
	lifetimes TokenLifetimes
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, uploads requestutil.UploadLimits, lifetimes TokenLifetimes) *Handler {
	return &Handler{service: service, uploads: uploads, lifetimes: lifetimes}
}

// Mount registers the credential routes on the shared /users router.
//
// # Endpoints
//   - POST /register        : Multipart registration (avatar, coverImage)
//   - POST /login           : Issues the token pair
//   - POST /refresh-token   : Rotates the token pair
//   - POST /logout          : Clears the refresh token (auth)
//   - POST /change-password : Replaces the password (auth)
func (handler *Handler) Mount(router chi.Router) {
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh-token", handler.refreshToken)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Post("/logout", handler.logout)
		protected.Post("/change-password", handler.changePassword)
	})
}

// # Request Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

/*
POST /api/v1/users/register

Description: Creates an account from a multipart form.

Request:
  - Form: fullName, email, username, password
  - Files: avatar (required), coverImage (optional)

Response:
  - 201: Account
  - 400: Missing field or avatar
  - 409: Username or email taken
  - 500: Upload failed
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	uploads, err := requestutil.ParseUploads(writer, request, handler.uploads, FieldAvatar, FieldCoverImage)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer uploads.Cleanup()

	account, err := handler.service.Register(request.Context(), RegisterInput{
		Username:       requestutil.FormValue(request, FieldUsername),
		Email:          requestutil.FormValue(request, FieldEmail),
		Password:       request.FormValue(FieldPassword),
		FullName:       requestutil.FormValue(request, FieldFullName),
		AvatarPath:     uploads.Path(FieldAvatar),
		CoverImagePath: uploads.Path(FieldCoverImage),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, account, "User registered successfully")
}

/*
POST /api/v1/users/login

Description: Verifies credentials and sets both token cookies.

Response:
  - 200: {user, accessToken, refreshToken}
  - 401: Wrong password
  - 404: Unknown username
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), input.Username, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setTokenCookies(writer, session)
	respond.OK(writer, session, "User logged in successfully")
}

/*
POST /api/v1/users/logout

Description: Clears the persisted refresh token and both cookies.
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	clearCookie(writer, constants.AccessTokenCookieName)
	clearCookie(writer, constants.RefreshTokenCookieName)
	respond.OK(writer, struct{}{}, "User logged out")
}

/*
POST /api/v1/users/refresh-token

Description: Rotates the pair. The refresh token is read from the cookie,
falling back to the JSON body field refreshToken.

Response:
  - 200: {accessToken, refreshToken}
  - 401: Missing, invalid, expired or already-used token
*/
func (handler *Handler) refreshToken(writer http.ResponseWriter, request *http.Request) {
	var token string
	if cookie, err := request.Cookie(constants.RefreshTokenCookieName); err == nil {
		token = cookie.Value
	}

	if token == "" {
		var input refreshRequest
		if err := requestutil.DecodeOptionalJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}
		token = input.RefreshToken
	}

	session, err := handler.service.RefreshAccessToken(request.Context(), token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setTokenCookies(writer, session)
	respond.OK(writer, session, "Access token refreshed")
}

/*
POST /api/v1/users/change-password

Response:
  - 200: Password changed
  - 400: Missing field
  - 401: Old password does not verify
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ChangePassword(request.Context(), actorID, input.OldPassword, input.NewPassword); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, struct{}{}, "Password changed successfully")
}

// # Cookies

func (handler *Handler) setTokenCookies(writer http.ResponseWriter, session *Session) {
	setCookie(writer, constants.AccessTokenCookieName, session.AccessToken, handler.lifetimes.Access)
	setCookie(writer, constants.RefreshTokenCookieName, session.RefreshToken, handler.lifetimes.Refresh)
}

func setCookie(writer http.ResponseWriter, name, value string, timeToLive time.Duration) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     constants.CookiePath,
		MaxAge:   int(timeToLive / time.Second),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearCookie(writer http.ResponseWriter, name string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     constants.CookiePath,
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
