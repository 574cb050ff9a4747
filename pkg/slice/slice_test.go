// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vidtube/pkg/slice"
)

func TestMap(t *testing.T) {
	columns := slice.Map([]string{"id", "title"}, func(column string) string { return "v." + column })
	assert.Equal(t, []string{"v.id", "v.title"}, columns)

	assert.Nil(t, slice.Map[string, string](nil, func(s string) string { return s }))
	assert.Empty(t, slice.Map([]int{}, func(i int) int { return i }))
}
