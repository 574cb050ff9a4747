// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the identifier scheme shared by every VidTube entity.

Accounts, videos, comments, tweets, playlists and relation rows are all keyed
by a Version 7 UUID, which keeps PostgreSQL B-tree inserts append-mostly.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// Valid reports whether s is a well-formed, hyphenated UUID of any version.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Canonical returns the lowercase hyphenated form of s, or s unchanged when
// it does not parse.
func Canonical(s string) string {
	id, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	return id.String()
}

// Equal reports whether a and b name the same UUID regardless of letter case.
func Equal(a, b string) bool {
	return Canonical(a) == Canonical(b)
}
