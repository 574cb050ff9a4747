// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest boots a throwaway CockroachDB node for repository
// integration tests and applies the up migrations to it.
//
// # Usage
//
// Integration tests carry the "integration" build tag and share one node
// per package through TestMain:
//
//	func TestMain(m *testing.M) {
//		database, err := pgtest.Start(context.Background())
//		...
//		code := m.Run()
//		database.Close()
//		os.Exit(code)
//	}
package pgtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/cockroachdb/cockroach-go/v2/testserver"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/vidtube/internal/platform/database/schema"
	"github.com/taibuivan/vidtube/internal/platform/postgres"
	"github.com/taibuivan/vidtube/pkg/uuid"
)

// Database is a migrated node plus a pool connected to it.
type Database struct {
	Pool   *pgxpool.Pool
	server testserver.TestServer
}

// Start launches the node, connects through [postgres.NewPool] and applies
// every *.up.sql file under data/migrations in name order.
func Start(ctx context.Context) (*Database, error) {
	server, err := testserver.NewTestServer()
	if err != nil {
		return nil, fmt.Errorf("pgtest: start test server: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pool, err := postgres.NewPool(ctx, server.PGURL().String(), logger)
	if err != nil {
		server.Stop()
		return nil, fmt.Errorf("pgtest: connect: %w", err)
	}

	database := &Database{Pool: pool, server: server}
	if err := database.migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// Close releases the pool and stops the node.
func (database *Database) Close() {
	database.Pool.Close()
	database.server.Stop()
}

// Reset empties every table so each test starts from a clean schema.
func (database *Database) Reset(ctx context.Context) error {
	tables := []string{
		schema.SocialSubscription.Table,
		schema.SocialLike.Table,
		schema.SocialPlaylist.Table,
		schema.SocialTweet.Table,
		schema.SocialComment.Table,
		schema.CoreVideo.Table,
		schema.UserAccount.Table,
	}

	statement := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(tables, ", "))
	if _, err := database.Pool.Exec(ctx, statement); err != nil {
		return fmt.Errorf("pgtest: reset: %w", err)
	}
	return nil
}

// # Seeding

// SeedAccount inserts an account with placeholder credentials and returns its ID.
func (database *Database) SeedAccount(ctx context.Context, username string) (string, error) {
	id := uuid.New()
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.UserAccount.Table,
		schema.UserAccount.ID,
		schema.UserAccount.Username,
		schema.UserAccount.Email,
		schema.UserAccount.FullName,
		schema.UserAccount.Password,
		schema.UserAccount.Avatar,
	)

	_, err := database.Pool.Exec(ctx, query,
		id, username, username+"@example.com", strings.ToUpper(username[:1])+username[1:],
		"$2a$10$placeholderplaceholderplaceholderplaceholderplace", "https://cdn.test/"+username+".png")
	if err != nil {
		return "", fmt.Errorf("pgtest: seed account: %w", err)
	}
	return id, nil
}

// SeedVideo inserts a video owned by ownerID and returns its ID.
func (database *Database) SeedVideo(ctx context.Context, ownerID, title string, views int64, published bool) (string, error) {
	id := uuid.New()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		schema.CoreVideo.Table,
		schema.CoreVideo.ID,
		schema.CoreVideo.OwnerID,
		schema.CoreVideo.VideoFile,
		schema.CoreVideo.Thumbnail,
		schema.CoreVideo.Title,
		schema.CoreVideo.Description,
		schema.CoreVideo.Duration,
		schema.CoreVideo.Views,
		schema.CoreVideo.IsPublished,
	)

	_, err := database.Pool.Exec(ctx, query,
		id, ownerID, "https://cdn.test/"+id+".mp4", "https://cdn.test/"+id+".jpg",
		title, title+" description", 61.5, views, published)
	if err != nil {
		return "", fmt.Errorf("pgtest: seed video: %w", err)
	}
	return id, nil
}

// # Migrations

func (database *Database) migrate(ctx context.Context) error {
	directory := migrationsDir()
	entries, err := os.ReadDir(directory)
	if err != nil {
		return fmt.Errorf("pgtest: read migrations: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		contents, err := os.ReadFile(filepath.Join(directory, name))
		if err != nil {
			return fmt.Errorf("pgtest: read migration %s: %w", name, err)
		}
		if _, err := database.Pool.Exec(ctx, string(contents)); err != nil {
			return fmt.Errorf("pgtest: apply migration %s: %w", name, err)
		}
	}
	return nil
}

// migrationsDir resolves data/migrations from this file's location, so tests
// find it regardless of the package they run in.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "data", "migrations")
}
