// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize canonicalizes user-supplied identity strings.
//
// # Usage
//
// Usernames and emails are unique across accounts, so every lookup and every
// insert must go through the same canonical form. "Alice", "ALICE" and the
// fullwidth "Ａｌｉｃｅ" all collapse to "alice".
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// cases.Caser is stateful, so a fresh one is built per call.
var lowerTag = language.Und

// Username trims, NFKC-normalizes and lowercases a username.
//
// # Transformation Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Normalizes to NFKC (folds compatibility forms such as fullwidth letters).
// 3. Lowercases with language-neutral rules.
func Username(s string) string {
	s = strings.TrimSpace(s)
	s = norm.NFKC.String(s)
	return cases.Lower(lowerTag).String(s)
}

// Email trims and lowercases an email address.
func Email(s string) string {
	return cases.Lower(lowerTag).String(strings.TrimSpace(s))
}
