// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tweet

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

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

var tweetColumns = strings.Join(schema.SocialTweet.Columns(), ", ")

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTweet(row rowScanner) (*Tweet, error) {
	tweet := &Tweet{}
	if err := row.Scan(&tweet.ID, &tweet.Content, &tweet.OwnerID, &tweet.CreatedAt, &tweet.UpdatedAt); err != nil {
		return nil, err
	}
	return tweet, nil
}

// Create persists a new tweet.
func (repository *PostgresRepository) Create(context context.Context, tweet *Tweet) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		schema.SocialTweet.Table,
		schema.SocialTweet.ID, schema.SocialTweet.Content, schema.SocialTweet.OwnerID,
		schema.SocialTweet.CreatedAt, schema.SocialTweet.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, tweet.ID, tweet.Content, tweet.OwnerID).
		Scan(&tweet.CreatedAt, &tweet.UpdatedAt)
	return dberr.Wrap(err, "create_tweet")
}

// FindByID retrieves one tweet.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Tweet, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		tweetColumns, schema.SocialTweet.Table, schema.SocialTweet.ID)

	tweet, err := scanTweet(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_tweet")
	}
	return tweet, nil
}

// ListByOwner returns the owner's tweets, newest first.
func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string) ([]Tweet, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		tweetColumns,
		schema.SocialTweet.Table,
		schema.SocialTweet.OwnerID,
		schema.SocialTweet.CreatedAt,
		schema.SocialTweet.ID,
	)

	rows, err := repository.pool.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tweets")
	}
	defer rows.Close()

	tweets := []Tweet{}
	for rows.Next() {
		tweet, err := scanTweet(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_tweets")
		}
		tweets = append(tweets, *tweet)
	}

	return tweets, dberr.Wrap(rows.Err(), "iterate_tweets")
}

// Update replaces the content of an owned tweet.
func (repository *PostgresRepository) Update(context context.Context, id, ownerID, content string) (*Tweet, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $3, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s`,
		schema.SocialTweet.Table,
		schema.SocialTweet.Content,
		schema.SocialTweet.UpdatedAt,
		schema.SocialTweet.ID,
		schema.SocialTweet.OwnerID,
		tweetColumns,
	)

	tweet, err := scanTweet(repository.pool.QueryRow(context, query, id, ownerID, content))
	if err != nil {
		return nil, dberr.Wrap(err, "update_tweet")
	}
	return tweet, nil
}

// Delete removes an owned tweet and the likes targeting it in one transaction.
func (repository *PostgresRepository) Delete(context context.Context, id, ownerID string) error {
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_tweet")
	}
	defer tx.Rollback(context)

	tag, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialTweet.Table, schema.SocialTweet.ID, schema.SocialTweet.OwnerID), id, ownerID)
	if err != nil {
		return dberr.Wrap(err, "delete_tweet")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if _, err := tx.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = 'tweet' AND %s = $1`,
		schema.SocialLike.Table, schema.SocialLike.TargetKind, schema.SocialLike.TargetID), id); err != nil {
		return dberr.Wrap(err, "delete_tweet_likes")
	}

	return dberr.Wrap(tx.Commit(context), "commit_delete_tweet")
}
