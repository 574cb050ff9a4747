// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vidtube/pkg/pagination"
)

/*
TestFromRequest covers defaulting and clamping of page/limit query values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 10}},
		{"explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"negative_page", "?page=-2&limit=5", pagination.Params{Page: 1, Limit: 5}},
		{"garbage", "?page=abc&limit=xyz", pagination.Params{Page: 1, Limit: 10}},
		{"limit_capped", "?limit=1000", pagination.Params{Page: 1, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/videos"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(request))
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 5}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 5}.Offset())
	assert.Equal(t, 5, pagination.Params{Page: 2, Limit: 5}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 5, 12)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 12, meta.Total)
}
