// Package cache хранит снимок настроек игры и счётчики частоты ставок на стороне сервера.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/lucky-triple/internal/models"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

const (
	KeySettings  = "settings:current"
	KeyRateLimit = "ratelimit:%s:%s"
)

var ErrMiss = errors.New("cache miss")

type Cache interface {
	GetSettings(ctx context.Context) (*models.GameSettings, error)
	SetSettings(ctx context.Context, settings models.GameSettings, ttl time.Duration) error
	InvalidateSettings(ctx context.Context) error
	Allow(ctx context.Context, userID string, action string, limit int, window time.Duration) (bool, error)
	Close() error
}
