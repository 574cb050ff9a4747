// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/sec"
	"github.com/taibuivan/vidtube/internal/platform/validate"
	"github.com/taibuivan/vidtube/pkg/normalize"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// # Contracts & Types

// TokenProvider issues and verifies the access/refresh token pair.
type TokenProvider interface {
	GenerateAccessToken(identity sec.Identity, timeToLive time.Duration) (string, error)
	GenerateRefreshToken(userID string, timeToLive time.Duration) (string, error)
	VerifyAccessToken(token string) (*sec.AuthClaims, error)
	VerifyRefreshToken(token string) (*sec.AuthClaims, error)
}

// MediaStorage stores uploaded images and returns their public URL.
type MediaStorage interface {
	Upload(ctx context.Context, localPath string) (string, error)
	Delete(ctx context.Context, location string) error
}

// TokenLifetimes configures how long each token of the pair stays valid.
type TokenLifetimes struct {
	Access  time.Duration
	Refresh time.Duration
}

// Service implements the account and credential use cases.
type Service struct {
	repository Repository
	tokens     TokenProvider
	storage    MediaStorage
	lifetimes  TokenLifetimes
	logger     *slog.Logger
}

// NewService constructs a new auth [Service].
func NewService(
	repository Repository,
	tokens TokenProvider,
	storage MediaStorage,
	lifetimes TokenLifetimes,
	logger *slog.Logger,
) *Service {
	return &Service{
		repository: repository,
		tokens:     tokens,
		storage:    storage,
		lifetimes:  lifetimes,
		logger:     logger,
	}
}

// # Registration Flow

// RegisterInput holds the fields of the registration form.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	FullName       string
	AvatarPath     string
	CoverImagePath string
}

/*
Register validates, uploads the images, hashes the password and persists a new account.

Description: The username is NFKC-normalized and lowercased and the email
lowercased before the uniqueness check, so "Alice" and "alice" collide. If
persisting fails after uploads, the stored images are deleted best-effort.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created entity (sanitized by JSON tags)
  - error: ValidationError, Conflict, UpstreamError or storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {
	input.Username = normalize.Username(input.Username)
	input.Email = normalize.Email(input.Email)

	validator := &validate.Validator{}
	validator.
		Required(FieldFullName, input.FullName).
		Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, 30).
		Required(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		Custom(FieldAvatar, input.AvatarPath == "", "Avatar file is required")
	if input.Email != "" {
		validator.Email(FieldEmail, input.Email)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	exists, err := service.repository.Exists(context, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("User with this username or email already exists")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	avatarURL, err := service.storage.Upload(context, input.AvatarPath)
	if err != nil {
		return nil, apperr.Upstream("Error while uploading avatar", err)
	}
	uploaded := []string{avatarURL}

	var coverURL string
	if input.CoverImagePath != "" {
		coverURL, err = service.storage.Upload(context, input.CoverImagePath)
		if err != nil {
			service.discard(context, uploaded...)
			return nil, apperr.Upstream("Error while uploading cover image", err)
		}
		uploaded = append(uploaded, coverURL)
	}

	account := &Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
		PasswordHash: hashedPassword,
	}

	if err := service.repository.Create(context, account); err != nil {
		service.discard(context, uploaded...)
		return nil, err
	}

	service.logger.Info("account_registered",
		slog.String("user_id", account.ID),
		slog.String("username", account.Username),
	)

	return account, nil
}

// # Authentication Flow

/*
Login verifies the password and issues a fresh token pair.

Description: The new refresh token hash overwrites any prior value, so a
second login signs out older refresh tokens.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *Session: Sanitized account and both tokens
  - error: ValidationError, NotFound (unknown username), Unauthorized (wrong password)
*/
func (service *Service) Login(context context.Context, username, password string) (*Session, error) {
	username = normalize.Username(username)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, username).Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.repository.FindByUsername(context, username)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid user credentials")
	}

	session, err := service.issue(account)
	if err != nil {
		return nil, err
	}

	if err := service.repository.SetRefreshToken(context, account.ID, sec.HashToken(session.RefreshToken)); err != nil {
		return nil, err
	}

	service.logger.Info("account_logged_in", slog.String("user_id", account.ID))

	return session, nil
}

// Logout clears the persisted refresh token. Calling it twice is harmless.
func (service *Service) Logout(context context.Context, actorID string) error {
	err := service.repository.SetRefreshToken(context, actorID, "")
	if err != nil && !apperr.HasCode(err, "NOT_FOUND") {
		return err
	}
	return nil
}

/*
RefreshAccessToken rotates the refresh token and issues a new access token.

Description: The presented token must verify as a refresh token, name an
existing account, and match the persisted hash. The swap is conditional on
that hash, so of two concurrent refreshes with the same token only one wins.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - *Session: New token pair (no account)
  - error: Unauthorized for every rejection
*/
func (service *Service) RefreshAccessToken(context context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("Unauthorized request")
	}

	claims, err := service.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid refresh token")
	}

	account, err := service.repository.FindByID(context, claims.UserID)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.Unauthorized("Invalid refresh token")
		}
		return nil, err
	}

	presentedHash := sec.HashToken(refreshToken)
	if account.RefreshTokenHash == "" || account.RefreshTokenHash != presentedHash {
		return nil, apperr.Unauthorized("Refresh token is expired or used")
	}

	session, err := service.issue(account)
	if err != nil {
		return nil, err
	}

	rotated, err := service.repository.RotateRefreshToken(context, account.ID, presentedHash, sec.HashToken(session.RefreshToken))
	if err != nil {
		return nil, err
	}
	if !rotated {
		return nil, apperr.Unauthorized("Refresh token is expired or used")
	}

	session.Account = nil
	return session, nil
}

/*
ChangePassword replaces the password after verifying the current one.

Parameters:
  - context: context.Context
  - actorID: string
  - oldPassword, newPassword: string

Returns:
  - error: ValidationError, Unauthorized (old password wrong or changed concurrently)
*/
func (service *Service) ChangePassword(context context.Context, actorID, oldPassword, newPassword string) error {
	validator := &validate.Validator{}
	validator.Required(FieldOldPassword, oldPassword).Required(FieldNewPassword, newPassword)
	if err := validator.Err(); err != nil {
		return err
	}

	account, err := service.repository.FindByID(context, actorID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(oldPassword, account.PasswordHash) {
		return apperr.Unauthorized("Invalid old password")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	updated, err := service.repository.UpdatePasswordHash(context, actorID, account.PasswordHash, hashedPassword)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.Unauthorized("Invalid old password")
	}

	service.logger.Info("account_password_changed", slog.String("user_id", actorID))
	return nil
}

// # Credential Verification

/*
VerifyCredential resolves an access token into the current actor.

Description: Implements the middleware TokenVerifier. Identity claims are
refreshed from the stored account so renamed users are reported correctly.

Returns:
  - *sec.AuthClaims: Verified actor
  - error: Unauthorized, or Internal on storage failures
*/
func (service *Service) VerifyCredential(context context.Context, token string) (*sec.AuthClaims, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Unauthorized request")
	}

	claims, err := service.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid access token")
	}

	account, err := service.repository.FindByID(context, claims.UserID)
	if err != nil {
		if apperr.HasCode(err, "NOT_FOUND") {
			return nil, apperr.Unauthorized("Invalid access token")
		}
		return nil, err
	}

	claims.Username = account.Username
	claims.Email = account.Email
	claims.FullName = account.FullName
	return claims, nil
}

// # Helpers

func (service *Service) issue(account *Account) (*Session, error) {
	accessToken, err := service.tokens.GenerateAccessToken(sec.Identity{
		UserID:   account.ID,
		Username: account.Username,
		Email:    account.Email,
		FullName: account.FullName,
	}, service.lifetimes.Access)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_sign_access_failed: %w", err))
	}

	refreshToken, err := service.tokens.GenerateRefreshToken(account.ID, service.lifetimes.Refresh)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_sign_refresh_failed: %w", err))
	}

	return &Session{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// discard deletes uploaded objects on a context detached from the client.
func (service *Service) discard(ctx context.Context, locations ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, location := range locations {
		if err := service.storage.Delete(ctx, location); err != nil {
			service.logger.Warn("media_cleanup_failed",
				slog.String("location", location),
				slog.Any("error", err),
			)
		}
	}
}
