// Package settings - кэш снимка настроек игры на стороне клиента.
package settings

import (
	"context"
	"errors"
	"sync"

	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks

// ErrNotLoaded - настройки ещё не получены
var ErrNotLoaded = errors.New("game settings not loaded")

type Fetcher interface {
	GetSettings(ctx context.Context) (*models.GameSettings, error)
}

// Cache - хранит неизменяемый снимок; обновление заменяет его целиком
type Cache struct {
	fetcher Fetcher
	group   singleflight.Group

	mu      sync.RWMutex
	current *models.GameSettings
}

func NewCache(fetcher Fetcher) *Cache {
	return &Cache{fetcher: fetcher}
}

// Refresh - загружает настройки; параллельные вызовы разделяют один запрос
func (c *Cache) Refresh(ctx context.Context) (models.GameSettings, error) {
	v, err, _ := c.group.Do("settings", func() (interface{}, error) {
		fetched, err := c.fetcher.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		if err := fetched.Validate(); err != nil {
			return nil, apperr.Wrap(apperr.ErrValidation, "settings", err)
		}
		return *fetched, nil
	})
	if err != nil {
		logger.Warnw("Failed to refresh game settings", zap.Error(err))
		return models.GameSettings{}, err
	}
	settings := v.(models.GameSettings)
	c.Replace(settings)
	return settings, nil
}

// Replace - подменяет снимок целиком, например после изменения администратором.
// Более старая версия не заменяет более новую.
func (c *Cache) Replace(settings models.GameSettings) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil && settings.Version < c.current.Version {
		return false
	}
	snapshot := settings
	c.current = &snapshot
	return true
}

// Snapshot - текущий снимок; вызывающий получает копию
func (c *Cache) Snapshot() (models.GameSettings, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return models.GameSettings{}, ErrNotLoaded
	}
	return *c.current, nil
}

// Clear - сброс при завершении сессии
func (c *Cache) Clear() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}
