// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package like

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/database/schema"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
	pgstore "github.com/taibuivan/vidtube/internal/platform/postgres"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// targetQuery checks one target kind; scoped queries bind the actor as $2.
type targetQuery struct {
	query  string
	scoped bool
}

var targetQueries = map[Kind]targetQuery{
	KindVideo: {
		query: fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s v WHERE v.id = $1 AND %s)`,
			schema.CoreVideo.Table, fmt.Sprintf(pgstore.VisibleVideo, 2)),
		scoped: true,
	},
	KindComment: {
		query: fmt.Sprintf(`
			SELECT EXISTS (
				SELECT 1 FROM %s c
				JOIN %s v ON v.id = c.videoid
				WHERE c.id = $1 AND %s
			)`,
			schema.SocialComment.Table, schema.CoreVideo.Table, fmt.Sprintf(pgstore.VisibleVideo, 2)),
		scoped: true,
	},
	KindTweet: {
		query: fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, schema.SocialTweet.Table),
	},
}

// TargetExists checks the table that holds the given kind.
func (repository *PostgresRepository) TargetExists(context context.Context, actorID string, kind Kind, targetID string) (bool, error) {
	target, ok := targetQueries[kind]
	if !ok {
		return false, fmt.Errorf("like: unknown target kind %q", kind)
	}

	args := []any{targetID}
	if target.scoped {
		args = append(args, pgstore.OptionalID(actorID))
	}

	var exists bool
	if err := repository.pool.QueryRow(context, target.query, args...).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "like_target_exists")
	}
	return exists, nil
}

// Remove deletes the actor's like on the target.
func (repository *PostgresRepository) Remove(context context.Context, actorID string, kind Kind, targetID string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3`,
		schema.SocialLike.Table,
		schema.SocialLike.LikedBy,
		schema.SocialLike.TargetKind,
		schema.SocialLike.TargetID,
	)

	tag, err := repository.pool.Exec(context, query, actorID, string(kind), targetID)
	if err != nil {
		return false, dberr.Wrap(err, "remove_like")
	}
	return tag.RowsAffected() > 0, nil
}

// Insert adds the like, ignoring a concurrent duplicate.
func (repository *PostgresRepository) Insert(context context.Context, actorID string, kind Kind, targetID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s, %s, %s) DO NOTHING`,
		schema.SocialLike.Table,
		schema.SocialLike.ID, schema.SocialLike.LikedBy, schema.SocialLike.TargetKind, schema.SocialLike.TargetID,
		schema.SocialLike.LikedBy, schema.SocialLike.TargetKind, schema.SocialLike.TargetID,
	)

	_, err := repository.pool.Exec(context, query, uuid.New(), actorID, string(kind), targetID)
	return dberr.Wrap(err, "insert_like")
}

// LikedVideos joins the actor's video likes with the videos and their owners.
func (repository *PostgresRepository) LikedVideos(context context.Context, actorID string) ([]LikedVideo, error) {
	query := fmt.Sprintf(`
		SELECT v.id, v.title, v.thumbnail, v.videofile, v.duration, v.views, l.createdat,
		       o.id, o.username, o.fullname, o.avatar
		FROM %s l
		JOIN core.video v ON v.id = l.targetid
		JOIN users.account o ON o.id = v.ownerid
		WHERE l.likedby = $1 AND l.targetkind = 'video'
		  AND %s
		ORDER BY l.createdat DESC, l.id DESC`, schema.SocialLike.Table, fmt.Sprintf(pgstore.VisibleVideo, 1))

	rows, err := repository.pool.Query(context, query, actorID)
	if err != nil {
		return nil, dberr.Wrap(err, "liked_videos")
	}
	defer rows.Close()

	videos := []LikedVideo{}
	for rows.Next() {
		var video LikedVideo
		if err := rows.Scan(
			&video.ID,
			&video.Title,
			&video.Thumbnail,
			&video.VideoFile,
			&video.Duration,
			&video.Views,
			&video.LikedAt,
			&video.Owner.ID,
			&video.Owner.Username,
			&video.Owner.FullName,
			&video.Owner.Avatar,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_liked_videos")
		}
		videos = append(videos, video)
	}

	return videos, dberr.Wrap(rows.Err(), "iterate_liked_videos")
}
