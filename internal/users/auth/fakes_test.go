// Copyright (c) 2026 VidTube. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vidtube/internal/platform/apperr"
	"github.com/taibuivan/vidtube/internal/platform/dberr"
	"github.com/taibuivan/vidtube/internal/platform/sec"
)

// memoryRepository mirrors the unique indexes and conditional updates of
// users.account.
type memoryRepository struct {
	mu       sync.Mutex
	accounts map[string]*Account
	failNext error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{accounts: map[string]*Account{}}
}

func (repository *memoryRepository) Create(_ context.Context, account *Account) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if err := repository.failNext; err != nil {
		repository.failNext = nil
		return err
	}
	for _, existing := range repository.accounts {
		if existing.Username == account.Username || existing.Email == account.Email {
			return apperr.Conflict("User with this username or email already exists")
		}
	}
	stored := *account
	repository.accounts[account.ID] = &stored
	return nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*Account, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	if account, ok := repository.accounts[id]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) FindByUsername(_ context.Context, username string) (*Account, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	for _, account := range repository.accounts {
		if account.Username == username {
			copied := *account
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *memoryRepository) Exists(_ context.Context, username, email string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	for _, account := range repository.accounts {
		if account.Username == username || account.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (repository *memoryRepository) SetRefreshToken(_ context.Context, id, tokenHash string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	account, ok := repository.accounts[id]
	if !ok {
		return apperr.NotFound("User")
	}
	account.RefreshTokenHash = tokenHash
	return nil
}

func (repository *memoryRepository) RotateRefreshToken(_ context.Context, id, previousHash, nextHash string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	account, ok := repository.accounts[id]
	if !ok || account.RefreshTokenHash != previousHash {
		return false, nil
	}
	account.RefreshTokenHash = nextHash
	return true, nil
}

func (repository *memoryRepository) UpdatePasswordHash(_ context.Context, id, previousHash, nextHash string) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	account, ok := repository.accounts[id]
	if !ok || account.PasswordHash != previousHash {
		return false, nil
	}
	account.PasswordHash = nextHash
	return true, nil
}

// memoryStorage records uploads and deletions.
type memoryStorage struct {
	mu        sync.Mutex
	uploaded []string
	deleted  []string
	failOn   map[string]bool
}

func (storage *memoryStorage) Upload(_ context.Context, localPath string) (string, error) {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	if storage.failOn[localPath] {
		return "", errors.New("bucket unavailable")
	}
	url := "https://cdn.test/" + localPath
	storage.uploaded = append(storage.uploaded, url)
	return url, nil
}

func (storage *memoryStorage) Delete(_ context.Context, location string) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	storage.deleted = append(storage.deleted, location)
	return nil
}

type fixture struct {
	service    *Service
	repository *memoryRepository
	storage    *memoryStorage
	tokens     *sec.TokenService
}

var testLifetimes = TokenLifetimes{Access: time.Minute, Refresh: time.Hour}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	repository := newMemoryRepository()
	storage := &memoryStorage{failOn: map[string]bool{}}
	tokens := sec.NewTokenServiceFromKey(key, "vidtube.test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service:    NewService(repository, tokens, storage, testLifetimes, logger),
		repository: repository,
		storage:    storage,
		tokens:     tokens,
	}
}

func (f *fixture) register(t *testing.T, username, password string) *Account {
	t.Helper()
	account, err := f.service.Register(context.Background(), RegisterInput{
		Username:   username,
		Email:      username + "@example.com",
		Password:   password,
		FullName:   "Test " + username,
		AvatarPath: username + "-avatar.png",
	})
	require.NoError(t, err)
	return account
}
