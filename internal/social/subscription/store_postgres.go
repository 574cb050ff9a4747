// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package subscription

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/database/schema"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
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

// AccountExists reports whether the account row is present.
func (repository *PostgresRepository) AccountExists(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.UserAccount.Table, schema.UserAccount.ID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "account_exists")
	}
	return exists, nil
}

// Remove deletes the subscription and reports whether one existed.
func (repository *PostgresRepository) Remove(context context.Context, subscriberID, channelID string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialSubscription.Table,
		schema.SocialSubscription.SubscriberID,
		schema.SocialSubscription.ChannelID,
	)

	tag, err := repository.pool.Exec(context, query, subscriberID, channelID)
	if err != nil {
		return false, dberr.Wrap(err, "remove_subscription")
	}
	return tag.RowsAffected() > 0, nil
}

// Insert subscribes, ignoring a concurrent duplicate. The self-subscription
// CHECK constraint surfaces as a ValidationError.
func (repository *PostgresRepository) Insert(context context.Context, subscriberID, channelID string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO NOTHING`,
		schema.SocialSubscription.Table,
		schema.SocialSubscription.ID, schema.SocialSubscription.SubscriberID, schema.SocialSubscription.ChannelID,
		schema.SocialSubscription.SubscriberID, schema.SocialSubscription.ChannelID,
	)

	_, err := repository.pool.Exec(context, query, uuid.New(), subscriberID, channelID)
	if dberr.IsCheckViolation(err) && dberr.ConstraintName(err) == constraintSelf {
		return errSelfSubscription()
	}
	return dberr.Wrap(err, "insert_subscription")
}

// Subscribers lists the accounts on the subscriber side of channelID.
func (repository *PostgresRepository) Subscribers(context context.Context, channelID string) ([]Channel, error) {
	return repository.resolve(context, schema.SocialSubscription.SubscriberID, schema.SocialSubscription.ChannelID, channelID, "subscribers")
}

// SubscribedChannels lists the accounts on the channel side of subscriberID.
func (repository *PostgresRepository) SubscribedChannels(context context.Context, subscriberID string) ([]Channel, error) {
	return repository.resolve(context, schema.SocialSubscription.ChannelID, schema.SocialSubscription.SubscriberID, subscriberID, "subscribed_channels")
}

// resolve joins one side of the relation to users.account while filtering on the other.
func (repository *PostgresRepository) resolve(context context.Context, joinColumn, filterColumn, id, action string) ([]Channel, error) {
	query := fmt.Sprintf(`
		SELECT a.id, a.username, a.fullname, a.email, a.avatar
		FROM %s s
		JOIN %s a ON a.id = s.%s
		WHERE s.%s = $1
		ORDER BY s.%s DESC, s.%s DESC`,
		schema.SocialSubscription.Table,
		schema.UserAccount.Table,
		joinColumn,
		filterColumn,
		schema.SocialSubscription.CreatedAt,
		schema.SocialSubscription.ID,
	)

	rows, err := repository.pool.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	channels := []Channel{}
	for rows.Next() {
		var channel Channel
		if err := rows.Scan(&channel.ID, &channel.Username, &channel.FullName, &channel.Email, &channel.Avatar); err != nil {
			return nil, dberr.Wrap(err, "scan_"+action)
		}
		channels = append(channels, channel)
	}

	return channels, dberr.Wrap(rows.Err(), "iterate_"+action)
}
