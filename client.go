package rediskit

import (
	"context"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	rediserrors "github.com/kbukum/rediskit/errors"
	"github.com/kbukum/rediskit/logger"
)

// Client is the high-level facade composing the connection manager, the
// per-type operation groups, and the key type checker.
type Client struct {
	Strings *Strings
	Lists   *Lists
	Hashes  *Hashes
	Sets    *Sets

	conn   *Connection
	rdb    *goredis.Client
	types  *TypeChecker
	log    *logger.Logger
	mu     sync.Mutex
	closed bool
}

// New creates a client and connects eagerly, verifying the connection with
// a ping before returning.
func New(ctx context.Context, cfg Config, log *logger.Logger) (*Client, error) {
	conn, err := NewConnection(cfg, log)
	if err != nil {
		return nil, err
	}
	return newFromConnection(ctx, conn, log)
}

// NewFromEnv creates a client from environment variables, optionally
// ingesting a .env file first. See FromEnv for the variable names.
func NewFromEnv(ctx context.Context, envFile string, log *logger.Logger) (*Client, error) {
	cfg, err := FromEnv(envFile)
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg, log)
}

func newFromConnection(ctx context.Context, conn *Connection, log *logger.Logger) (*Client, error) {
	rdb, err := conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return &Client{
		Strings: NewStrings(rdb),
		Lists:   NewLists(rdb),
		Hashes:  NewHashes(rdb),
		Sets:    NewSets(rdb),
		conn:    conn,
		rdb:     rdb,
		types:   NewTypeChecker(rdb),
		log:     log.WithComponent("redis"),
	}, nil
}

// With creates a client, runs fn, and closes the connection on every exit
// path, including a panic inside fn.
func With(ctx context.Context, cfg Config, log *logger.Logger, fn func(*Client) error) error {
	client, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()
	return fn(client)
}

// Ping reports liveness as a boolean, swallowing connectivity failures.
func (c *Client) Ping(ctx context.Context) bool {
	return c.conn.IsConnected(ctx)
}

// KeyExists reports whether the key exists.
func (c *Client) KeyExists(ctx context.Context, key string) (bool, error) {
	if err := c.guard(); err != nil {
		return false, err
	}
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("exists %q: %w", key, err)
	}
	return n > 0, nil
}

// GetKeyType returns the type label for key, TypeNone when absent.
func (c *Client) GetKeyType(ctx context.Context, key string) (KeyType, error) {
	if err := c.guard(); err != nil {
		return "", err
	}
	return c.types.TypeOf(ctx, key)
}

// DeleteKey removes one or more keys and returns the number deleted.
func (c *Client) DeleteKey(ctx context.Context, keys ...string) (int64, error) {
	if err := c.guard(); err != nil {
		return 0, err
	}
	n, err := c.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("del: %w", err)
	}
	return n, nil
}

// GetValueByType reads the full value of key based on its type label:
// string GET, list LRANGE 0 -1, hash HGETALL, set SMEMBERS. An absent key
// yields (nil, nil). A type this wrapper has no group for (e.g. zset)
// yields a descriptive "unsupported type" string, not an error.
func (c *Client) GetValueByType(ctx context.Context, key string) (interface{}, error) {
	keyType, err := c.GetKeyType(ctx, key)
	if err != nil {
		return nil, err
	}

	switch keyType {
	case TypeString:
		val, ok, err := c.Strings.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return val, nil
	case TypeList:
		return c.Lists.RangeAll(ctx, key)
	case TypeHash:
		return c.Hashes.GetAll(ctx, key)
	case TypeSet:
		return c.Sets.Members(ctx, key)
	case TypeNone:
		return nil, nil
	default:
		c.log.Debug("no operation group for key type", map[string]interface{}{
			logger.FieldKey: key,
			"key_type":      string(keyType),
		})
		return fmt.Sprintf("unsupported type: %s", keyType), nil
	}
}

// Close releases the connection. Safe to call multiple times; facade
// operations after Close fail with a NOT_CONNECTED error until a new
// client is created.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Disconnect()
}

// Unwrap returns the underlying go-redis client for advanced operations.
func (c *Client) Unwrap() *goredis.Client {
	return c.rdb
}

func (c *Client) guard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return rediserrors.NotConnected()
	}
	return nil
}
