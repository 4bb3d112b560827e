package rediskit

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Hashes wraps Redis hash commands.
type Hashes struct {
	rdb goredis.Cmdable
}

// NewHashes creates a hash operation group over the given handle.
func NewHashes(rdb goredis.Cmdable) *Hashes {
	return &Hashes{rdb: rdb}
}

// Set stores a field. Returns 1 when the field is new, 0 when it was updated.
func (h *Hashes) Set(ctx context.Context, key, field, value string) (int64, error) {
	n, err := h.rdb.HSet(ctx, key, field, value).Result()
	if err != nil {
		return 0, fmt.Errorf("hset %q %q: %w", key, field, err)
	}
	return n, nil
}

// Get retrieves a field value. ok is false when the field or key is absent.
func (h *Hashes) Get(ctx context.Context, key, field string) (string, bool, error) {
	val, err := h.rdb.HGet(ctx, key, field).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("hget %q %q: %w", key, field, err)
	}
	return val, true, nil
}

// GetAll returns all fields and values. The map is empty for an absent key.
func (h *Hashes) GetAll(ctx context.Context, key string) (map[string]string, error) {
	m, err := h.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %q: %w", key, err)
	}
	return m, nil
}

// Delete removes fields and returns the number removed.
func (h *Hashes) Delete(ctx context.Context, key string, fields ...string) (int64, error) {
	n, err := h.rdb.HDel(ctx, key, fields...).Result()
	if err != nil {
		return 0, fmt.Errorf("hdel %q: %w", key, err)
	}
	return n, nil
}
