// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ownership guards mutations of user-owned resources.
//
// Services load the resource first (absent → NotFound), call [Ensure], and
// then issue an UPDATE or DELETE that also filters on the owner column. Zero
// affected rows at that point means the resource vanished in between and is
// reported as NotFound.
package ownership

import (
	"fmt"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
)

// Owned is implemented by every ownership-checked entity.
type Owned interface {
	OwnedBy() string
}

// Ensure returns Forbidden unless actorID owns the resource.
func Ensure(actorID string, resource Owned, noun string) error {
	if actorID == "" {
		return apperr.Unauthorized("Authentication required")
	}
	if resource.OwnedBy() != actorID {
		return apperr.Forbidden(fmt.Sprintf("You do not have permission to modify this %s", noun))
	}
	return nil
}
