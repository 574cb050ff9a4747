// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package toggle implements the on/off relation shared by likes and
// subscriptions.
//
// # Semantics
//
// A toggle first tries to delete the relation. If nothing was deleted it
// inserts with ON CONFLICT DO NOTHING, so two concurrent toggles from the
// same actor never produce a duplicate row or a unique-violation error.
// A conflicting insert still reports [Added]: the relation now exists.
package toggle

import (
	"context"
	"net/http"
)

// Outcome is the state of the relation after a toggle.
type Outcome string

const (
	Added   Outcome = "added"
	Removed Outcome = "removed"
)

// Active reports whether the relation exists after the toggle.
func (outcome Outcome) Active() bool {
	return outcome == Added
}

// StatusCode maps the outcome to its HTTP status: 201 for added, 200 for removed.
func (outcome Outcome) StatusCode() int {
	if outcome == Added {
		return http.StatusCreated
	}
	return http.StatusOK
}

// Relation is the storage side of a single actor/target pair.
type Relation interface {
	// Remove deletes the relation and reports whether a row was removed.
	Remove(ctx context.Context) (bool, error)

	// Insert creates the relation, ignoring an existing row.
	Insert(ctx context.Context) error
}

// Funcs adapts two closures into a [Relation].
type Funcs struct {
	RemoveFunc func(ctx context.Context) (bool, error)
	InsertFunc func(ctx context.Context) error
}

func (funcs Funcs) Remove(ctx context.Context) (bool, error) { return funcs.RemoveFunc(ctx) }
func (funcs Funcs) Insert(ctx context.Context) error         { return funcs.InsertFunc(ctx) }

// Flip toggles the relation and returns the resulting outcome.
func Flip(ctx context.Context, relation Relation) (Outcome, error) {
	removed, err := relation.Remove(ctx)
	if err != nil {
		return "", err
	}
	if removed {
		return Removed, nil
	}

	if err := relation.Insert(ctx); err != nil {
		return "", err
	}
	return Added, nil
}
