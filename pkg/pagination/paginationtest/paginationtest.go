// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package paginationtest helps in-memory repositories page their results the
// way LIMIT/OFFSET does.
package paginationtest

import "github.com/taibuivan/vidtube/pkg/pagination"

// Page returns the items that params selects out of items.
func Page[T any](items []T, params pagination.Params) []T {
	start := params.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
