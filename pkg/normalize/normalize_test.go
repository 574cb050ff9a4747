// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vidtube/pkg/normalize"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already_canonical", "alice", "alice"},
		{"mixed_case", "AlIcE", "alice"},
		{"surrounding_space", "  bob  ", "bob"},
		{"fullwidth", "Ａｌｉｃｅ", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Username(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", normalize.Email(" Alice@Example.COM "))
}
