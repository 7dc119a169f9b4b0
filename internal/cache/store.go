package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Store - общее хранилище ключ-значение без TTL и вытеснения.
// Область ключей задает вызывающая сторона.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Key собирает ключ из частей через ":"
func Key(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, ":")
}

// GetJSON читает значение и декодирует его в dst
func GetJSON(ctx context.Context, store Store, key string, dst any) (bool, error) {
	data, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode cached value %q: %w", key, err)
	}
	return true, nil
}

// SetJSON кодирует значение и сохраняет его
func SetJSON(ctx context.Context, store Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value %q: %w", key, err)
	}
	return store.Set(ctx, key, data)
}
