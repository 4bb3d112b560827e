package rediskit

import (
	"context"
	"net"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/kbukum/rediskit/logger"
)

// newTestMini starts an in-memory Redis server for testing.
func newTestMini(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)
	return mini
}

// newTestConfig builds a Config pointing at the given miniredis instance.
func newTestConfig(t *testing.T, mini *miniredis.Miniredis) Config {
	t.Helper()
	host, portStr, err := net.SplitHostPort(mini.Addr())
	if err != nil {
		t.Fatalf("failed to split miniredis addr: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("failed to parse miniredis port: %v", err)
	}
	cfg := Config{Host: host, Port: port}
	cfg.ApplyDefaults()
	return cfg
}

// newTestClient creates a connected Client backed by miniredis.
func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mini := newTestMini(t)
	cfg := newTestConfig(t, mini)

	client, err := New(context.Background(), cfg, logger.NewDefault("rediskit-test"))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, mini
}
