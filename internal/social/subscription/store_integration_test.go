// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

//go:build integration

package subscription_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/postgres/pgtest"
	"github.com/taibuivan/vidtube/internal/social/subscription"
)

var testDatabase *pgtest.Database

func TestMain(m *testing.M) {
	database, err := pgtest.Start(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "start database: %v\n", err)
		os.Exit(1)
	}
	testDatabase = database

	code := m.Run()

	database.Close()
	os.Exit(code)
}

func TestPostgresRepository_SelfSubscription(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, testDatabase.Reset(ctx))
	repository := subscription.NewRepository(testDatabase.Pool)

	alice, err := testDatabase.SeedAccount(ctx, "alice")
	require.NoError(t, err)

	err = repository.Insert(ctx, alice, strings.ToUpper(alice))
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	exists, err := repository.AccountExists(ctx, strings.ToUpper(alice))
	require.NoError(t, err)
	assert.True(t, exists)

	channels, err := repository.SubscribedChannels(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, channels)
}
