package rediskit

import (
	"fmt"
	"net"
	"strconv"
	"time"

	rediserrors "github.com/kbukum/rediskit/errors"
)

// Config holds Redis connection configuration.
type Config struct {
	// Host is the Redis server host.
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the Redis server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Password is the Redis server password.
	Password string `yaml:"password" mapstructure:"password"`

	// DB is the Redis database number.
	DB int `yaml:"db" mapstructure:"db"`

	// DecodeResponses requests text replies from the server. go-redis always
	// decodes replies to strings, so the flag is carried for configuration
	// compatibility and never forwarded.
	DecodeResponses bool `yaml:"decode_responses" mapstructure:"decode_responses"`

	// PoolSize is the maximum number of socket connections.
	PoolSize int `yaml:"pool_size" mapstructure:"pool_size"`

	// MinIdleConns is the minimum number of idle connections.
	MinIdleConns int `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`

	// DialTimeout is the timeout for establishing new connections (e.g. "5s").
	DialTimeout string `yaml:"dial_timeout" mapstructure:"dial_timeout"`

	// ReadTimeout is the timeout for socket reads (e.g. "3s").
	ReadTimeout string `yaml:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout is the timeout for socket writes (e.g. "3s").
	WriteTimeout string `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// Addr returns the host:port address of the Redis server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.PoolSize <= 0 {
		c.PoolSize = 10
	}
	if c.MinIdleConns <= 0 {
		c.MinIdleConns = 2
	}
	if c.DialTimeout == "" {
		c.DialTimeout = "5s"
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "3s"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "3s"
	}
	c.DecodeResponses = true
}

// Validate checks that required fields are present and parseable.
func (c *Config) Validate() error {
	if c.Host == "" {
		return rediserrors.MissingConfig("host")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return rediserrors.InvalidConfig("port", fmt.Sprintf("must be in 1..65535, got %d", c.Port))
	}
	if c.PoolSize <= 0 {
		return rediserrors.InvalidConfig("pool_size", "must be > 0")
	}
	if _, err := time.ParseDuration(c.DialTimeout); err != nil {
		return rediserrors.InvalidConfig("dial_timeout", fmt.Sprintf("%q is not a duration", c.DialTimeout))
	}
	if _, err := time.ParseDuration(c.ReadTimeout); err != nil {
		return rediserrors.InvalidConfig("read_timeout", fmt.Sprintf("%q is not a duration", c.ReadTimeout))
	}
	if _, err := time.ParseDuration(c.WriteTimeout); err != nil {
		return rediserrors.InvalidConfig("write_timeout", fmt.Sprintf("%q is not a duration", c.WriteTimeout))
	}
	return nil
}
