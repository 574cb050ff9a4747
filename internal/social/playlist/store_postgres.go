// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package playlist

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/database/schema"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
	pgstore "github.com/taibuivan/vidtube/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of [Repository].
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// playlistColumns renders the array as text[] so it scans into []string.
var playlistColumns = fmt.Sprintf("%s, %s, %s, %s, %s::text[], %s, %s",
	schema.SocialPlaylist.ID,
	schema.SocialPlaylist.Name,
	schema.SocialPlaylist.Description,
	schema.SocialPlaylist.OwnerID,
	schema.SocialPlaylist.VideoIDs,
	schema.SocialPlaylist.CreatedAt,
	schema.SocialPlaylist.UpdatedAt,
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlaylist(row rowScanner) (*Playlist, error) {
	playlist := &Playlist{}
	err := row.Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.Description,
		&playlist.OwnerID,
		&playlist.VideoIDs,
		&playlist.CreatedAt,
		&playlist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []string{}
	}
	return playlist, nil
}

// Create persists a new, empty playlist.
func (repository *PostgresRepository) Create(context context.Context, playlist *Playlist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)
		RETURNING %s`,
		schema.SocialPlaylist.Table,
		schema.SocialPlaylist.ID, schema.SocialPlaylist.Name,
		schema.SocialPlaylist.Description, schema.SocialPlaylist.OwnerID,
		playlistColumns,
	)

	created, err := scanPlaylist(repository.pool.QueryRow(context, query,
		playlist.ID, playlist.Name, playlist.Description, playlist.OwnerID))
	if err != nil {
		return dberr.Wrap(err, "create_playlist")
	}
	*playlist = *created
	return nil
}

// FindByID retrieves one playlist.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Playlist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		playlistColumns, schema.SocialPlaylist.Table, schema.SocialPlaylist.ID)

	playlist, err := scanPlaylist(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_playlist")
	}
	return playlist, nil
}

// ListByOwner returns the owner's playlists, newest first.
func (repository *PostgresRepository) ListByOwner(context context.Context, ownerID string) ([]Playlist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		playlistColumns,
		schema.SocialPlaylist.Table,
		schema.SocialPlaylist.OwnerID,
		schema.SocialPlaylist.CreatedAt,
		schema.SocialPlaylist.ID,
	)

	rows, err := repository.pool.Query(context, query, ownerID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_playlists")
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_playlists")
		}
		playlists = append(playlists, *playlist)
	}

	return playlists, dberr.Wrap(rows.Err(), "iterate_playlists")
}

// ResolveVideos joins the stored IDs with their visible videos, keeping array order.
func (repository *PostgresRepository) ResolveVideos(context context.Context, id, viewerID string) ([]VideoSummary, error) {
	query := fmt.Sprintf(`
		SELECT v.id, v.title, v.thumbnail, v.videofile, v.duration, v.views, v.ownerid
		FROM social.playlist p
		CROSS JOIN LATERAL unnest(p.videoids) WITH ORDINALITY AS e(videoid, position)
		JOIN core.video v ON v.id = e.videoid
		WHERE p.id = $1 AND %s
		ORDER BY e.position`, fmt.Sprintf(pgstore.VisibleVideo, 2))

	rows, err := repository.pool.Query(context, query, id, pgstore.OptionalID(viewerID))
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_playlist_videos")
	}
	defer rows.Close()

	videos := []VideoSummary{}
	for rows.Next() {
		var video VideoSummary
		if err := rows.Scan(
			&video.ID,
			&video.Title,
			&video.Thumbnail,
			&video.VideoFile,
			&video.Duration,
			&video.Views,
			&video.OwnerID,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_playlist_videos")
		}
		videos = append(videos, video)
	}

	return videos, dberr.Wrap(rows.Err(), "iterate_playlist_videos")
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

// AddVideo performs a set-union of the video into the array.
func (repository *PostgresRepository) AddVideo(context context.Context, id, ownerID, videoID string) (*Playlist, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = CASE
		        WHEN $3::uuid = ANY(%[2]s) THEN %[2]s
		        ELSE array_append(%[2]s, $3::uuid)
		    END,
		    %[3]s = NOW()
		WHERE %[4]s = $1 AND %[5]s = $2
		RETURNING %[6]s`,
		schema.SocialPlaylist.Table,
		schema.SocialPlaylist.VideoIDs,
		schema.SocialPlaylist.UpdatedAt,
		schema.SocialPlaylist.ID,
		schema.SocialPlaylist.OwnerID,
		playlistColumns,
	)

	playlist, err := scanPlaylist(repository.pool.QueryRow(context, query, id, ownerID, videoID))
	if err != nil {
		return nil, dberr.Wrap(err, "add_playlist_video")
	}
	return playlist, nil
}

// RemoveVideo drops the video from the array.
func (repository *PostgresRepository) RemoveVideo(context context.Context, id, ownerID, videoID string) (*Playlist, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = array_remove(%[2]s, $3::uuid), %[3]s = NOW()
		WHERE %[4]s = $1 AND %[5]s = $2
		RETURNING %[6]s`,
		schema.SocialPlaylist.Table,
		schema.SocialPlaylist.VideoIDs,
		schema.SocialPlaylist.UpdatedAt,
		schema.SocialPlaylist.ID,
		schema.SocialPlaylist.OwnerID,
		playlistColumns,
	)

	playlist, err := scanPlaylist(repository.pool.QueryRow(context, query, id, ownerID, videoID))
	if err != nil {
		return nil, dberr.Wrap(err, "remove_playlist_video")
	}
	return playlist, nil
}

// Update applies the non-empty fields.
func (repository *PostgresRepository) Update(context context.Context, id, ownerID, name, description string) (*Playlist, error) {
	query := fmt.Sprintf(`
		UPDATE %[1]s
		SET %[2]s = COALESCE(NULLIF($3, ''), %[2]s),
		    %[3]s = COALESCE(NULLIF($4, ''), %[3]s),
		    %[4]s = NOW()
		WHERE %[5]s = $1 AND %[6]s = $2
		RETURNING %[7]s`,
		schema.SocialPlaylist.Table,
		schema.SocialPlaylist.Name,
		schema.SocialPlaylist.Description,
		schema.SocialPlaylist.UpdatedAt,
		schema.SocialPlaylist.ID,
		schema.SocialPlaylist.OwnerID,
		playlistColumns,
	)

	playlist, err := scanPlaylist(repository.pool.QueryRow(context, query, id, ownerID, name, description))
	if err != nil {
		return nil, dberr.Wrap(err, "update_playlist")
	}
	return playlist, nil
}

// Delete removes an owned playlist.
func (repository *PostgresRepository) Delete(context context.Context, id, ownerID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.SocialPlaylist.Table, schema.SocialPlaylist.ID, schema.SocialPlaylist.OwnerID)

	tag, err := repository.pool.Exec(context, query, id, ownerID)
	if err != nil {
		return dberr.Wrap(err, "delete_playlist")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
