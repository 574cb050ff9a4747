// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

// VisibleVideo is the predicate that hides unpublished videos, aliased v,
// from everyone but their owner. The viewer is bound with [OptionalID].
const VisibleVideo = "(v.ispublished OR v.ownerid = $%d)"

// OptionalID binds an empty ID as SQL NULL, so anonymous viewers match no owner.
func OptionalID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
