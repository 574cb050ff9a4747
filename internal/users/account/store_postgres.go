// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/database/schema"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
	pgstore "github.com/taibuivan/vidtube/internal/platform/postgres"
	"github.com/taibuivan/vidtube/internal/users/auth"
	"github.com/taibuivan/vidtube/pkg/slice"
)

// # Profile Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// sanitizedColumns is the projection of a public account, in scan order.
var sanitizedColumns = strings.Join(schema.UserAccount.Columns(), ", ")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSanitized(row rowScanner, leading ...any) (*auth.Account, error) {
	account := &auth.Account{}
	dest := append(leading,
		&account.ID,
		&account.Username,
		&account.Email,
		&account.FullName,
		&account.Avatar,
		&account.CoverImage,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return account, nil
}

/*
FindByID retrieves the sanitized account.

Returns:
  - *auth.Account: Account without secrets
  - error: NotFound or database execution failure
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*auth.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		sanitizedColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	account, err := scanSanitized(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_profile")
	}
	return account, nil
}

/*
UpdateDetails applies the non-empty fields and returns the updated row.

Description: Empty inputs keep the stored value through COALESCE(NULLIF(...)).
A duplicate email trips the unique index and is reported as Conflict.
*/
func (repository *PostgresRepository) UpdateDetails(context context.Context, id, fullName, email string) (*auth.Account, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = COALESCE(NULLIF($2, ''), %[2]s),
		    %[3]s = COALESCE(NULLIF($3, ''), %[3]s),
		    %[4]s = NOW()
		WHERE %[5]s = $1
		RETURNING %[6]s`,
		schema.UserAccount.Table,
		schema.UserAccount.FullName,
		schema.UserAccount.Email,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		sanitizedColumns,
	)

	account, err := scanSanitized(repository.pool.QueryRow(context, query, id, fullName, email))
	if dberr.IsUniqueViolation(err) {
		return nil, apperr.Conflict("Email is already registered")
	}
	if err != nil {
		return nil, dberr.Wrap(err, "update_account_details")
	}
	return account, nil
}

/*
ReplaceImage swaps one image column and returns the previous URL.

Description: The previous value is read under a row lock in the same
statement, so concurrent uploads each get back the URL they replaced.
*/
func (repository *PostgresRepository) ReplaceImage(context context.Context, id string, field ImageField, url string) (string, *auth.Account, error) {
	column := schema.UserAccount.Avatar
	if field == ImageCoverImage {
		column = schema.UserAccount.CoverImage
	}

	query := fmt.Sprintf(`
		WITH previous AS (
			SELECT %[2]s AS url FROM %[1]s WHERE %[3]s = $1 FOR UPDATE
		)
		UPDATE %[1]s
		SET %[2]s = $2, %[4]s = NOW()
		FROM previous
		WHERE %[3]s = $1
		RETURNING previous.url, %[5]s`,
		schema.UserAccount.Table,
		column,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
		qualified(schema.UserAccount.Table, schema.UserAccount.Columns()),
	)

	var previous string
	account, err := scanSanitized(repository.pool.QueryRow(context, query, id, url), &previous)
	if err != nil {
		return "", nil, dberr.Wrap(err, "replace_account_image")
	}
	return previous, account, nil
}

/*
ChannelProfile counts both subscription directions and the viewer's own
subscription in a single round trip.
*/
func (repository *PostgresRepository) ChannelProfile(context context.Context, username, viewerID string) (*ChannelProfile, error) {
	const query = `
		SELECT a.id, a.fullname, a.username, a.email, a.avatar, a.coverimage,
		       (SELECT COUNT(*) FROM social.subscription s WHERE s.channelid = a.id),
		       (SELECT COUNT(*) FROM social.subscription s WHERE s.subscriberid = a.id),
		       EXISTS (
		           SELECT 1 FROM social.subscription s
		           WHERE s.channelid = a.id AND s.subscriberid = NULLIF($2, '')::uuid
		       )
		FROM users.account a
		WHERE a.username = $1`

	profile := &ChannelProfile{}
	err := repository.pool.QueryRow(context, query, username, viewerID).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Username,
		&profile.Email,
		&profile.Avatar,
		&profile.CoverImage,
		&profile.SubscribersCount,
		&profile.ChannelsSubscribedToCount,
		&profile.IsSubscribed,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "channel_profile")
	}
	return profile, nil
}

/*
WatchHistory expands the watchhistory array with its ordinal so the stored
order and duplicate entries survive the join. Videos unpublished since they
were watched are skipped unless the account owns them.
*/
func (repository *PostgresRepository) WatchHistory(context context.Context, id string) ([]WatchedVideo, error) {
	query := fmt.Sprintf(`
		SELECT v.id, v.videofile, v.thumbnail, v.title, v.description, v.duration, v.views, v.createdat,
		       o.id, o.fullname, o.username, o.avatar
		FROM users.account a
		CROSS JOIN LATERAL unnest(a.watchhistory) WITH ORDINALITY AS h(videoid, position)
		JOIN core.video v ON v.id = h.videoid
		JOIN users.account o ON o.id = v.ownerid
		WHERE a.id = $1 AND %s
		ORDER BY h.position`, fmt.Sprintf(pgstore.VisibleVideo, 1))

	rows, err := repository.pool.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "watch_history")
	}
	defer rows.Close()

	history := []WatchedVideo{}
	for rows.Next() {
		var entry WatchedVideo
		if err := rows.Scan(
			&entry.ID,
			&entry.VideoFile,
			&entry.Thumbnail,
			&entry.Title,
			&entry.Description,
			&entry.Duration,
			&entry.Views,
			&entry.CreatedAt,
			&entry.Owner.ID,
			&entry.Owner.FullName,
			&entry.Owner.Username,
			&entry.Owner.Avatar,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_watch_history")
		}
		history = append(history, entry)
	}

	return history, dberr.Wrap(rows.Err(), "iterate_watch_history")
}

func qualified(table string, columns []string) string {
	return strings.Join(slice.Map(columns, func(column string) string {
		return table + "." + column
	}), ", ")
}
