package rediskit

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// KeyType is the normalized label for a Redis key's data type.
type KeyType string

const (
	TypeString KeyType = "string"
	TypeList   KeyType = "list"
	TypeHash   KeyType = "hash"
	TypeSet    KeyType = "set"
	TypeZSet   KeyType = "zset"
	TypeNone   KeyType = "none"
)

// Known reports whether the label is one this wrapper recognizes. Labels
// reported by the server but not listed here (e.g. stream) pass through
// TypeOf unchanged and land in GetValueByType's unsupported branch.
func (t KeyType) Known() bool {
	switch t {
	case TypeString, TypeList, TypeHash, TypeSet, TypeZSet, TypeNone:
		return true
	}
	return false
}

// TypeChecker resolves key type labels.
type TypeChecker struct {
	rdb goredis.Cmdable
}

// NewTypeChecker creates a type checker over the given handle.
func NewTypeChecker(rdb goredis.Cmdable) *TypeChecker {
	return &TypeChecker{rdb: rdb}
}

// TypeOf returns the type label for key, or TypeNone when the key is
// absent. go-redis decodes the reply to text, so the label needs no
// binary normalization beyond this boundary.
func (tc *TypeChecker) TypeOf(ctx context.Context, key string) (KeyType, error) {
	raw, err := tc.rdb.Type(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("type of %q: %w", key, err)
	}
	return KeyType(raw), nil
}
