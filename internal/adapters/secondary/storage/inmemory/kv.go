package inmemory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/TolikMuradov/AstroCalendar/internal/ports/cache"
)

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// KV in-memory реализация cache.Cache с TTL, истёкшие ключи удаляются лениво при чтении
type KV struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewKV() *KV {
	return &KV{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

var _ cache.Cache = (*KV)(nil)

func (c *KV) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", cache.ErrNotFound, key)
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		// ключ могли перезаписать между блокировками
		if cur, ok := c.data[key]; ok && cur.expired(c.now()) {
			delete(c.data, key)
		}
		c.mu.Unlock()
		return "", fmt.Errorf("%w: %s", cache.ErrNotFound, key)
	}
	return e.value, nil
}

func (c *KV) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
	return nil
}

func (c *KV) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	return nil
}

func (c *KV) DeleteByPrefix(_ context.Context, prefix string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	deleted := 0
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
			deleted++
		}
	}
	return deleted, nil
}

// Len число хранимых ключей, включая ещё не вычищенные истёкшие
func (c *KV) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

func (c *KV) Close() error {
	return nil
}
