// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/database/schema"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
	pgstore "github.com/taibuivan/vidtube/internal/platform/postgres"
	"github.com/taibuivan/vidtube/pkg/pagination"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var commentColumns = strings.Join(schema.SocialComment.Columns(), ", ")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(
		&comment.ID,
		&comment.Content,
		&comment.VideoID,
		&comment.OwnerID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

/*
ForVideo returns one page of a video's comments, newest first, joined with
their author and video.
*/
func (repository *PostgresRepository) ForVideo(context context.Context, videoID, viewerID string, page pagination.Params) ([]VideoComment, int, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.content, c.createdat,
		       o.username, o.fullname, o.avatar,
		       v.id, v.title, v.thumbnail,
		       COUNT(*) OVER()
		FROM social.comment c
		JOIN core.video v ON v.id = c.videoid
		JOIN users.account o ON o.id = c.ownerid
		WHERE c.videoid = $1 AND %s
		ORDER BY c.createdat DESC, c.id DESC
		LIMIT $2 OFFSET $3`, fmt.Sprintf(pgstore.VisibleVideo, 4))

	rows, err := repository.pool.Query(context, query, videoID, page.Limit, page.Offset(), pgstore.OptionalID(viewerID))
	if err != nil {
		return nil, 0, dberr.Wrap(err, "video_comments")
	}
	defer rows.Close()

	var total int
	comments := []VideoComment{}
	for rows.Next() {
		var item VideoComment
		if err := rows.Scan(
			&item.ID,
			&item.Content,
			&item.CreatedAt,
			&item.Owner.Username,
			&item.Owner.FullName,
			&item.Owner.Avatar,
			&item.Video.ID,
			&item.Video.Title,
			&item.Video.Thumbnail,
			&total,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_video_comments")
		}
		comments = append(comments, item)
	}

	return comments, total, dberr.Wrap(rows.Err(), "iterate_video_comments")
}

// VideoExists reports whether the video row is present and visible to viewerID.
func (repository *PostgresRepository) VideoExists(context context.Context, videoID, viewerID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s v WHERE v.%s = $1 AND %s)`,
		schema.CoreVideo.Table, schema.CoreVideo.ID, fmt.Sprintf(pgstore.VisibleVideo, 2))

	var exists bool
	if err := repository.pool.QueryRow(context, query, videoID, pgstore.OptionalID(viewerID)).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "video_exists")
	}
	return exists, nil
}

// Create persists a new comment.
func (repository *PostgresRepository) Create(context context.Context, comment *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		schema.SocialComment.Table,
		schema.SocialComment.ID, schema.SocialComment.Content,
		schema.SocialComment.VideoID, schema.SocialComment.OwnerID,
		schema.SocialComment.CreatedAt, schema.SocialComment.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		comment.ID, comment.Content, comment.VideoID, comment.OwnerID,
	).Scan(&comment.CreatedAt, &comment.UpdatedAt)

	return dberr.Wrap(err, "create_comment")
}

// FindByID retrieves one comment.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		commentColumns, schema.SocialComment.Table, schema.SocialComment.ID)

	comment, err := scanComment(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_comment")
	}
	return comment, nil
}

// Update replaces the content of an owned comment.
func (repository *PostgresRepository) Update(context context.Context, id, ownerID, content string) (*Comment, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $3, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s`,
		schema.SocialComment.Table,
		schema.SocialComment.Content,
		schema.SocialComment.UpdatedAt,
		schema.SocialComment.ID,
		schema.SocialComment.OwnerID,
		commentColumns,
	)

	comment, err := scanComment(repository.pool.QueryRow(context, query, id, ownerID, content))
	if err != nil {
		return nil, dberr.Wrap(err, "update_comment")
	}
	return comment, nil
}

// Delete removes an owned comment and the likes targeting it in one transaction.
func (repository *PostgresRepository) Delete(context context.Context, id, ownerID string) error {
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_comment")
	}
	defer tx.Rollback(context)

	tag, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialComment.Table, schema.SocialComment.ID, schema.SocialComment.OwnerID), id, ownerID)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if _, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = 'comment' AND %s = $1`,
		schema.SocialLike.Table, schema.SocialLike.TargetKind, schema.SocialLike.TargetID), id); err != nil {
		return dberr.Wrap(err, "delete_comment_likes")
	}

	return dberr.Wrap(tx.Commit(context), "commit_delete_comment")
}
