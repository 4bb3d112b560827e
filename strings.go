package rediskit

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Strings wraps Redis string commands. Stateless; holds a non-owning
// reference to the connection handle.
type Strings struct {
	rdb goredis.Cmdable
}

// NewStrings creates a string operation group over the given handle.
func NewStrings(rdb goredis.Cmdable) *Strings {
	return &Strings{rdb: rdb}
}

// Get retrieves a string value. ok is false when the key does not exist.
func (s *Strings) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return val, true, nil
}

// Set stores a string value with no expiry.
func (s *Strings) Set(ctx context.Context, key, value string) error {
	return s.SetWithTTL(ctx, key, value, 0)
}

// SetWithTTL stores a string value with an expiry. A ttl of 0 means no expiry.
func (s *Strings) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes the key and returns the number of keys deleted (0 or 1).
func (s *Strings) Delete(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.Del(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("del %q: %w", key, err)
	}
	return n, nil
}
