package rediskit

import (
	"context"
	"fmt"

	"github.com/kbukum/rediskit/logger"
)

// Status is a component health status.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// Health describes the health of the Redis component.
type Health struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Component wraps Client construction with a Start/Stop/Health lifecycle
// for embedding programs that manage infrastructure components uniformly.
type Component struct {
	cfg    Config
	log    *logger.Logger
	client *Client
}

// NewComponent creates a Redis component. The client is not created until
// Start.
func NewComponent(cfg Config, log *logger.Logger) *Component {
	return &Component{
		cfg: cfg,
		log: log.WithComponent("redis"),
	}
}

// Name returns the component name.
func (c *Component) Name() string { return "redis" }

// Client returns the underlying *Client, or nil if not started.
func (c *Component) Client() *Client {
	return c.client
}

// Start creates the client and verifies connectivity.
func (c *Component) Start(ctx context.Context) error {
	client, err := New(ctx, c.cfg, c.log)
	if err != nil {
		return fmt.Errorf("redis start: %w", err)
	}
	c.client = client
	c.log.Info("Redis component started")
	return nil
}

// Stop gracefully closes the Redis connection.
func (c *Component) Stop(_ context.Context) error {
	if c.client == nil {
		return nil
	}
	c.log.Info("Redis component stopping")
	err := c.client.Close()
	c.client = nil
	return err
}

// Health returns the current health status of the Redis connection.
func (c *Component) Health(ctx context.Context) Health {
	if c.client == nil {
		return Health{
			Name:    c.Name(),
			Status:  StatusUnhealthy,
			Message: "redis not started",
		}
	}

	if !c.client.Ping(ctx) {
		return Health{
			Name:    c.Name(),
			Status:  StatusUnhealthy,
			Message: "ping failed",
		}
	}

	return Health{
		Name:   c.Name(),
		Status: StatusHealthy,
	}
}

// Describe returns a one-line infrastructure summary.
func (c *Component) Describe() string {
	return fmt.Sprintf("%s db=%d pool=%d", c.cfg.Addr(), c.cfg.DB, c.cfg.PoolSize)
}
