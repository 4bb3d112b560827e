package rediskit

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Sets wraps Redis set commands.
type Sets struct {
	rdb goredis.Cmdable
}

// NewSets creates a set operation group over the given handle.
func NewSets(rdb goredis.Cmdable) *Sets {
	return &Sets{rdb: rdb}
}

// Add inserts members and returns the number actually added.
func (s *Sets) Add(ctx context.Context, key string, members ...string) (int64, error) {
	n, err := s.rdb.SAdd(ctx, key, toArgs(members)...).Result()
	if err != nil {
		return 0, fmt.Errorf("sadd %q: %w", key, err)
	}
	return n, nil
}

// Members returns all members. Order is unspecified.
func (s *Sets) Members(ctx context.Context, key string) ([]string, error) {
	members, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %q: %w", key, err)
	}
	return members, nil
}

// Remove deletes members and returns the number removed.
func (s *Sets) Remove(ctx context.Context, key string, members ...string) (int64, error) {
	n, err := s.rdb.SRem(ctx, key, toArgs(members)...).Result()
	if err != nil {
		return 0, fmt.Errorf("srem %q: %w", key, err)
	}
	return n, nil
}
