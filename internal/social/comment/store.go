// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"

	"github.com/taibuivan/vidtube/pkg/pagination"
)

// Repository defines the persistence operations for comments.
type Repository interface {
	// ForVideo and VideoExists treat an unpublished video as absent unless
	// viewerID owns it. An empty viewerID is anonymous.
	ForVideo(ctx context.Context, videoID, viewerID string, page pagination.Params) ([]VideoComment, int, error)
	VideoExists(ctx context.Context, videoID, viewerID string) (bool, error)
	Create(ctx context.Context, comment *Comment) error
	FindByID(ctx context.Context, id string) (*Comment, error)

	// Update and Delete filter on the owner; a foreign owner matches no row.
	Update(ctx context.Context, id, ownerID, content string) (*Comment, error)
	Delete(ctx context.Context, id, ownerID string) error
}
