// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements accounts and credentials for VidTube.

It owns the [Account] entity, registration, login, the access/refresh token
pair and its rotation, password changes, and the verification of presented
access tokens used by the authentication middleware.

# Architecture

  - Entity: [Account] (sanitized by its JSON tags).
  - Service: Orchestrates hashing, token issuance and media uploads.
  - Repository: PostgreSQL, with conditional updates for every credential swap.
*/
package auth

import "time"

// # Domain Entities

// Account is a registered user, which is also a channel.
//
// PasswordHash and RefreshTokenHash never leave the process: their JSON tags
// drop them from every response.
type Account struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	Avatar           string    `json:"avatar"`
	CoverImage       string    `json:"coverImage"`
	PasswordHash     string    `json:"-"`
	RefreshTokenHash string    `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Session is the result of a successful login or refresh.
type Session struct {
	Account      *Account `json:"user,omitempty"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

// # Field Identifiers

const (
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldFullName     = "fullName"
	FieldAvatar       = "avatar"
	FieldCoverImage   = "coverImage"
	FieldOldPassword  = "oldPassword"
	FieldNewPassword  = "newPassword"
	FieldRefreshToken = "refreshToken"
)
