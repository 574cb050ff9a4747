// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/ownership"
)

type tweet struct{ owner string }

func (t tweet) OwnedBy() string { return t.owner }

func TestEnsure(t *testing.T) {
	assert.NoError(t, ownership.Ensure("alice", tweet{owner: "alice"}, "tweet"))

	err := ownership.Ensure("bob", tweet{owner: "alice"}, "tweet")
	assert.True(t, apperr.HasCode(err, "FORBIDDEN"))
	assert.Equal(t, "You do not have permission to modify this tweet", err.Error())

	assert.True(t, apperr.HasCode(ownership.Ensure("", tweet{owner: "alice"}, "tweet"), "UNAUTHORIZED"))
}
