package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound ключ отсутствует или истёк
var ErrNotFound = errors.New("cache: key not found")

// Cache интерфейс для работы с кэшем
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set сохраняет значение; ttl == 0 - без срока жизни
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix удаляет все ключи с префиксом, возвращает число удалённых
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
	Close() error
}
