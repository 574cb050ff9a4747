// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package paginationtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vidtube/pkg/pagination"
	"github.com/taibuivan/vidtube/pkg/pagination/paginationtest"
)

/*
TestPage asserts that page 2 of limit 5 selects items 6-10.
*/
func TestPage(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i + 1
	}

	assert.Equal(t, []int{6, 7, 8, 9, 10}, paginationtest.Page(items, pagination.Params{Page: 2, Limit: 5}))

	// The third page is partial, the fourth is empty.
	assert.Equal(t, []int{11, 12}, paginationtest.Page(items, pagination.Params{Page: 3, Limit: 5}))
	assert.Empty(t, paginationtest.Page(items, pagination.Params{Page: 4, Limit: 5}))
}
