package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/denmor86/lucky-triple/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache - кэш в памяти процесса, когда Redis не настроен
type MemoryCache struct {
	store *gocache.Cache
	mu    sync.Mutex
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{store: gocache.New(5*time.Minute, 10*time.Minute)}
}

func (c *MemoryCache) GetSettings(_ context.Context) (*models.GameSettings, error) {
	v, ok := c.store.Get(KeySettings)
	if !ok {
		return nil, ErrMiss
	}
	settings := v.(models.GameSettings)
	return &settings, nil
}

func (c *MemoryCache) SetSettings(_ context.Context, settings models.GameSettings, ttl time.Duration) error {
	c.store.Set(KeySettings, settings, ttl)
	return nil
}

func (c *MemoryCache) InvalidateSettings(_ context.Context) error {
	c.store.Delete(KeySettings)
	return nil
}

// Allow - счётчик в фиксированном окне
func (c *MemoryCache) Allow(_ context.Context, userID string, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(KeyRateLimit, userID, action)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Add(key, 1, window); err == nil {
		return limit >= 1, nil
	}
	count, err := c.store.IncrementInt(key, 1)
	if err != nil {
		return false, err
	}
	return count <= limit, nil
}

func (c *MemoryCache) Close() error {
	c.store.Flush()
	return nil
}
