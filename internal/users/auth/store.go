// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # Account Data Access

// Repository defines the credential-side persistence contract for accounts.
type Repository interface {

	/*
		Create persists a new account.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: Conflict when the username or email index fires
	*/
	Create(context context.Context, account *Account) error

	/*
		FindByID returns the account with the given ID, secrets included.

		Returns:
		  - *Account: Hydrated entity
		  - error: NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByUsername returns the account with the given normalized username.

		Returns:
		  - *Account: Hydrated entity
		  - error: NotFound or storage failures
	*/
	FindByUsername(context context.Context, username string) (*Account, error)

	/*
		Exists reports whether the username or the email is already taken.
	*/
	Exists(context context.Context, username, email string) (bool, error)

	/*
		SetRefreshToken overwrites the persisted refresh token hash.
		An empty hash clears it.
	*/
	SetRefreshToken(context context.Context, id, tokenHash string) error

	/*
		RotateRefreshToken swaps the refresh token hash only if the stored value
		still equals previousHash.

		Returns:
		  - bool: false when another request rotated or cleared it first
		  - error: Storage failures
	*/
	RotateRefreshToken(context context.Context, id, previousHash, nextHash string) (bool, error)

	/*
		UpdatePasswordHash swaps the password hash only if the stored value
		still equals previousHash.

		Returns:
		  - bool: false when the stored hash changed since it was read
		  - error: Storage failures
	*/
	UpdatePasswordHash(context context.Context, id, previousHash, nextHash string) (bool, error)
}
