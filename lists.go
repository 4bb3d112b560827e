package rediskit

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Lists wraps Redis list commands.
type Lists struct {
	rdb goredis.Cmdable
}

// NewLists creates a list operation group over the given handle.
func NewLists(rdb goredis.Cmdable) *Lists {
	return &Lists{rdb: rdb}
}

// LPush pushes values to the head of the list and returns the new length.
func (l *Lists) LPush(ctx context.Context, key string, values ...string) (int64, error) {
	n, err := l.rdb.LPush(ctx, key, toArgs(values)...).Result()
	if err != nil {
		return 0, fmt.Errorf("lpush %q: %w", key, err)
	}
	return n, nil
}

// RPush pushes values to the tail of the list and returns the new length.
func (l *Lists) RPush(ctx context.Context, key string, values ...string) (int64, error) {
	n, err := l.rdb.RPush(ctx, key, toArgs(values)...).Result()
	if err != nil {
		return 0, fmt.Errorf("rpush %q: %w", key, err)
	}
	return n, nil
}

// LPop pops a value from the head of the list. ok is false when the list
// is empty or the key does not exist.
func (l *Lists) LPop(ctx context.Context, key string) (string, bool, error) {
	val, err := l.rdb.LPop(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lpop %q: %w", key, err)
	}
	return val, true, nil
}

// RPop pops a value from the tail of the list. ok is false when the list
// is empty or the key does not exist.
func (l *Lists) RPop(ctx context.Context, key string) (string, bool, error) {
	val, err := l.rdb.RPop(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("rpop %q: %w", key, err)
	}
	return val, true, nil
}

// Range returns the elements between start and stop inclusive. Negative
// indices count from the tail per Redis semantics.
func (l *Lists) Range(ctx context.Context, key string, start, stop int64) ([]string, error) {
	vals, err := l.rdb.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %q: %w", key, err)
	}
	return vals, nil
}

// RangeAll returns the entire list in order.
func (l *Lists) RangeAll(ctx context.Context, key string) ([]string, error) {
	return l.Range(ctx, key, 0, -1)
}

// Len returns the length of the list.
func (l *Lists) Len(ctx context.Context, key string) (int64, error) {
	n, err := l.rdb.LLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("llen %q: %w", key, err)
	}
	return n, nil
}

func toArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
