package rediskit

import (
	"context"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	rediserrors "github.com/kbukum/rediskit/errors"
	"github.com/kbukum/rediskit/logger"
)

// Connection manages the lifecycle of a single go-redis client handle.
// Connect and Disconnect are idempotent; the handle is created lazily and
// nil after Disconnect, so operations holding the old handle fail until a
// new Connect.
type Connection struct {
	cfg Config
	log *logger.Logger
	mu  sync.Mutex
	rdb *goredis.Client
}

// NewConnection creates a connection manager from a validated configuration.
// No connection attempt is made until Connect or Handle is called.
func NewConnection(cfg Config, log *logger.Logger) (*Connection, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Connection{
		cfg: cfg,
		log: log.WithComponent("redis"),
	}, nil
}

// Config returns the configuration the connection was created with.
func (c *Connection) Config() Config {
	return c.cfg
}

// Connect establishes the connection if absent and verifies it with a ping.
// Calling Connect on a live connection returns the existing handle without
// a second ping.
func (c *Connection) Connect(ctx context.Context) (*goredis.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked(ctx)
}

func (c *Connection) connectLocked(ctx context.Context) (*goredis.Client, error) {
	if c.rdb != nil {
		return c.rdb, nil
	}

	dialTimeout, _ := time.ParseDuration(c.cfg.DialTimeout)
	readTimeout, _ := time.ParseDuration(c.cfg.ReadTimeout)
	writeTimeout, _ := time.ParseDuration(c.cfg.WriteTimeout)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:         c.cfg.Addr(),
		Password:     c.cfg.Password,
		DB:           c.cfg.DB,
		PoolSize:     c.cfg.PoolSize,
		MinIdleConns: c.cfg.MinIdleConns,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, rediserrors.ConnectionFailed(c.cfg.Addr(), err)
	}

	c.rdb = rdb
	c.log.Info("Redis connection established", map[string]interface{}{
		logger.FieldAddr: c.cfg.Addr(),
		logger.FieldDB:   c.cfg.DB,
		"pool_size":      c.cfg.PoolSize,
	})
	return rdb, nil
}

// Handle returns the live handle, connecting first if necessary.
func (c *Connection) Handle(ctx context.Context) (*goredis.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked(ctx)
}

// Disconnect releases the handle. Safe to call multiple times.
func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rdb == nil {
		return nil
	}
	c.log.Info("Closing Redis connection")
	err := c.rdb.Close()
	c.rdb = nil
	return err
}

// IsConnected reports whether the handle exists and answers a ping.
// Connectivity failures are swallowed into false.
func (c *Connection) IsConnected(ctx context.Context) bool {
	c.mu.Lock()
	rdb := c.rdb
	c.mu.Unlock()

	if rdb == nil {
		return false
	}
	return rdb.Ping(ctx).Err() == nil
}

// With runs fn with a connected handle and disconnects on every exit path,
// including a panic inside fn.
func (c *Connection) With(ctx context.Context, fn func(*goredis.Client) error) error {
	rdb, err := c.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = c.Disconnect() }()
	return fn(rdb)
}
