// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package video

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/database/schema"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
)

// # Video Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var videoColumns = strings.Join(schema.CoreVideo.Columns(), ", ")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*Video, error) {
	video := &Video{}
	err := row.Scan(
		&video.ID,
		&video.OwnerID,
		&video.VideoFile,
		&video.Thumbnail,
		&video.Title,
		&video.Description,
		&video.Duration,
		&video.Views,
		&video.IsPublished,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return video, nil
}

func feedDest(video *FeedVideo) []any {
	return []any{
		&video.ID,
		&video.VideoFile,
		&video.Thumbnail,
		&video.Title,
		&video.Description,
		&video.Duration,
		&video.Views,
		&video.IsPublished,
		&video.CreatedAt,
		&video.Owner.ID,
		&video.Owner.Username,
		&video.Owner.FullName,
		&video.Owner.Avatar,
	}
}

/*
Feed runs the statement rendered by [buildFeedQuery].

Returns:
  - []FeedVideo: One page, possibly empty
  - int: Total matches across all pages
  - error: Database execution failure
*/
func (repository *PostgresRepository) Feed(context context.Context, query FeedQuery) ([]FeedVideo, int, error) {
	statement, args := buildFeedQuery(query)

	rows, err := repository.pool.Query(context, statement, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "video_feed")
	}
	defer rows.Close()

	var total int
	videos := []FeedVideo{}
	for rows.Next() {
		var video FeedVideo
		if err := rows.Scan(append(feedDest(&video), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_video_feed")
		}
		videos = append(videos, video)
	}

	return videos, total, dberr.Wrap(rows.Err(), "iterate_video_feed")
}

// Create persists a new video.
func (repository *PostgresRepository) Create(context context.Context, video *Video) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s, %s`,
		schema.CoreVideo.Table,
		schema.CoreVideo.ID, schema.CoreVideo.OwnerID, schema.CoreVideo.VideoFile,
		schema.CoreVideo.Thumbnail, schema.CoreVideo.Title, schema.CoreVideo.Description,
		schema.CoreVideo.Duration, schema.CoreVideo.IsPublished,
		schema.CoreVideo.Views, schema.CoreVideo.CreatedAt, schema.CoreVideo.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		video.ID,
		video.OwnerID,
		video.VideoFile,
		video.Thumbnail,
		video.Title,
		video.Description,
		video.Duration,
		video.IsPublished,
	).Scan(&video.Views, &video.CreatedAt, &video.UpdatedAt)

	return dberr.Wrap(err, "create_video")
}

// FindByID retrieves the raw video row.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Video, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		videoColumns, schema.CoreVideo.Table, schema.CoreVideo.ID)

	video, err := scanVideo(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_video")
	}
	return video, nil
}

// FindWithOwner retrieves one video joined with its owner.
func (repository *PostgresRepository) FindWithOwner(context context.Context, id string) (*FeedVideo, error) {
	query := `
		SELECT v.id, v.videofile, v.thumbnail, v.title, v.description, v.duration,
		       v.views, v.ispublished, v.createdat,
		       o.id, o.username, o.fullname, o.avatar
		FROM core.video v
		JOIN users.account o ON o.id = v.ownerid
		WHERE v.id = $1`

	video := &FeedVideo{}
	if err := repository.pool.QueryRow(context, query, id).Scan(feedDest(video)...); err != nil {
		return nil, dberr.Wrap(err, "find_video_with_owner")
	}
	return video, nil
}

/*
RecordView increments the counter and extends the watch history in one
transaction. Both statements are sent as a single batch.
*/
func (repository *PostgresRepository) RecordView(context context.Context, videoID, viewerID string) error {
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_record_view")
	}
	defer tx.Rollback(context)

	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.CoreVideo.Table, schema.CoreVideo.Views, schema.CoreVideo.Views, schema.CoreVideo.ID), videoID)
	batch.Queue(fmt.Sprintf(`UPDATE %s SET %s = array_append(%s, $2) WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.WatchHistory, schema.UserAccount.WatchHistory, schema.UserAccount.ID),
		viewerID, videoID)

	results := tx.SendBatch(context, batch)
	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return dberr.Wrap(err, "record_view")
		}
	}
	if err := results.Close(); err != nil {
		return dberr.Wrap(err, "record_view")
	}

	return dberr.Wrap(tx.Commit(context), "commit_record_view")
}

// Update applies the non-empty fields for the owner.
func (repository *PostgresRepository) Update(context context.Context, id, ownerID string, changes Changes) (*Video, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = COALESCE(NULLIF($3, ''), %[2]s),
		    %[3]s = COALESCE(NULLIF($4, ''), %[3]s),
		    %[4]s = COALESCE(NULLIF($5, ''), %[4]s),
		    %[5]s = NOW()
		WHERE %[6]s = $1 AND %[7]s = $2
		RETURNING %[8]s`,
		schema.CoreVideo.Table,
		schema.CoreVideo.Title,
		schema.CoreVideo.Description,
		schema.CoreVideo.Thumbnail,
		schema.CoreVideo.UpdatedAt,
		schema.CoreVideo.ID,
		schema.CoreVideo.OwnerID,
		videoColumns,
	)

	video, err := scanVideo(repository.pool.QueryRow(context, query,
		id, ownerID, changes.Title, changes.Description, changes.Thumbnail))
	if err != nil {
		return nil, dberr.Wrap(err, "update_video")
	}
	return video, nil
}

/*
Delete removes the video with everything that points at it.

Description: Likes use a polymorphic target without a foreign key, so the
likes on the video and on its comments are removed here, before the video
row. Playlists keep their order after the ID is dropped from their array.
Comments cascade. A non-owner or missing video deletes nothing.
*/
func (repository *PostgresRepository) Delete(context context.Context, id, ownerID string) error {
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_video")
	}
	defer tx.Rollback(context)

	// Comment likes go first: the comments themselves cascade with the video.
	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf(`
		DELETE FROM %s l
		USING %s c
		WHERE l.%s = 'comment' AND l.%s = c.%s AND c.%s = $1`,
		schema.SocialLike.Table, schema.SocialComment.Table,
		schema.SocialLike.TargetKind, schema.SocialLike.TargetID,
		schema.SocialComment.ID, schema.SocialComment.VideoID), id)
	batch.Queue(fmt.Sprintf(`DELETE FROM %s WHERE %s = 'video' AND %s = $1`,
		schema.SocialLike.Table, schema.SocialLike.TargetKind, schema.SocialLike.TargetID), id)
	batch.Queue(fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = array_remove(%[2]s, $1), %[3]s = NOW()
		WHERE $1 = ANY(%[2]s)`,
		schema.SocialPlaylist.Table, schema.SocialPlaylist.VideoIDs, schema.SocialPlaylist.UpdatedAt), id)
	batch.Queue(fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreVideo.Table, schema.CoreVideo.ID, schema.CoreVideo.OwnerID), id, ownerID)

	results := tx.SendBatch(context, batch)
	var tag pgconn.CommandTag
	for range batch.Len() {
		if tag, err = results.Exec(); err != nil {
			results.Close()
			return dberr.Wrap(err, "delete_video")
		}
	}
	if err := results.Close(); err != nil {
		return dberr.Wrap(err, "delete_video")
	}

	// The last statement is the owner-filtered delete of the video itself.
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(tx.Commit(context), "commit_delete_video")
}

// TogglePublish flips ispublished atomically for the owner.
func (repository *PostgresRepository) TogglePublish(context context.Context, id, ownerID string) (*Video, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = NOT %[2]s, %[3]s = NOW()
		WHERE %[4]s = $1 AND %[5]s = $2
		RETURNING %[6]s`,
		schema.CoreVideo.Table,
		schema.CoreVideo.IsPublished,
		schema.CoreVideo.UpdatedAt,
		schema.CoreVideo.ID,
		schema.CoreVideo.OwnerID,
		videoColumns,
	)

	video, err := scanVideo(repository.pool.QueryRow(context, query, id, ownerID))
	if err != nil {
		return nil, dberr.Wrap(err, "toggle_publish")
	}
	return video, nil
}
