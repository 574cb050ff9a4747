// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/core/video"
	"github.com/taibuivan/vidtube/internal/platform/database/schema"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// likesOn counts the likes of one target kind whose target table row is owned by $1.
func likesOn(kind, table string) string {
	return fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s l
		JOIN %s t ON t.id = l.%s
		WHERE l.%s = '%s' AND t.ownerid = $1`,
		schema.SocialLike.Table, table, schema.SocialLike.TargetID, schema.SocialLike.TargetKind, kind)
}

var metricQueries = map[Metric]string{
	MetricSubscribers: fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.SocialSubscription.Table, schema.SocialSubscription.ChannelID),
	MetricVideos: fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.CoreVideo.Table, schema.CoreVideo.OwnerID),
	MetricViews: fmt.Sprintf(`SELECT COALESCE(SUM(%s), 0)::bigint FROM %s WHERE %s = $1`,
		schema.CoreVideo.Views, schema.CoreVideo.Table, schema.CoreVideo.OwnerID),
	MetricVideoLikes:   likesOn("video", schema.CoreVideo.Table),
	MetricTweetLikes:   likesOn("tweet", schema.SocialTweet.Table),
	MetricCommentLikes: likesOn("comment", schema.SocialComment.Table),
}

// Count evaluates one metric.
func (repository *PostgresRepository) Count(context context.Context, metric Metric, ownerID string) (int64, error) {
	query, ok := metricQueries[metric]
	if !ok {
		return 0, fmt.Errorf("dashboard: unknown metric %q", metric)
	}

	var total int64
	if err := repository.pool.QueryRow(context, query, ownerID).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_"+string(metric))
	}
	return total, nil
}

// ChannelVideos lists the owner's videos, drafts included.
func (repository *PostgresRepository) ChannelVideos(context context.Context, ownerID string) ([]video.Video, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		strings.Join(schema.CoreVideo.Columns(), ", "),
		schema.CoreVideo.Table,
		schema.CoreVideo.OwnerID,
		schema.CoreVideo.CreatedAt,
		schema.CoreVideo.ID,
	)

	rows, err := repository.pool.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "channel_videos")
	}
	defer rows.Close()

	videos := []video.Video{}
	for rows.Next() {
		var item video.Video
		if err := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.VideoFile,
			&item.Thumbnail,
			&item.Title,
			&item.Description,
			&item.Duration,
			&item.Views,
			&item.IsPublished,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_channel_videos")
		}
		videos = append(videos, item)
	}

	return videos, dberr.Wrap(rows.Err(), "iterate_channel_videos")
}
