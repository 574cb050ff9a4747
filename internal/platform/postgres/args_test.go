// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vidtube/internal/platform/postgres"
)

func TestOptionalID(t *testing.T) {
	assert.Nil(t, postgres.OptionalID(""))
	assert.Equal(t, "0192f3e0-0000-7000-8000-000000000001", postgres.OptionalID("0192f3e0-0000-7000-8000-000000000001"))
}

func TestVisibleVideo(t *testing.T) {
	assert.Equal(t, "(v.ispublished OR v.ownerid = $2)", fmt.Sprintf(postgres.VisibleVideo, 2))
}
