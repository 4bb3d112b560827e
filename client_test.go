package rediskit

import (
	"context"
	"reflect"
	"sort"
	"strconv"
	"testing"

	goredis "github.com/redis/go-redis/v9"

	rediserrors "github.com/kbukum/rediskit/errors"
	"github.com/kbukum/rediskit/logger"
)

func TestClientPing(t *testing.T) {
	client, mini := newTestClient(t)
	ctx := context.Background()

	if !client.Ping(ctx) {
		t.Error("expected Ping true against a live server")
	}

	mini.Close()
	if client.Ping(ctx) {
		t.Error("expected Ping false after server shutdown")
	}
}

func TestClientKeyExists(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	exists, err := client.KeyExists(ctx, "k")
	if err != nil {
		t.Fatalf("KeyExists failed: %v", err)
	}
	if exists {
		t.Error("expected false for missing key")
	}

	client.Strings.Set(ctx, "k", "v")
	exists, err = client.KeyExists(ctx, "k")
	if err != nil {
		t.Fatalf("KeyExists failed: %v", err)
	}
	if !exists {
		t.Error("expected true for existing key")
	}
}

func TestClientDeleteKey(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.Strings.Set(ctx, "k1", "v")
	client.Strings.Set(ctx, "k2", "v")

	n, err := client.DeleteKey(ctx, "k1", "k2", "k3")
	if err != nil {
		t.Fatalf("DeleteKey failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 deleted, got %d", n)
	}
}

func TestClientGetKeyTypeMissing(t *testing.T) {
	client, _ := newTestClient(t)

	keyType, err := client.GetKeyType(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetKeyType failed: %v", err)
	}
	if keyType != TypeNone {
		t.Errorf("expected none, got %s", keyType)
	}
}

func TestClientGetValueByTypeString(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.Strings.Set(ctx, "k", "hello")
	val, err := client.GetValueByType(ctx, "k")
	if err != nil {
		t.Fatalf("GetValueByType failed: %v", err)
	}
	if val != "hello" {
		t.Errorf("expected hello, got %v", val)
	}
}

func TestClientGetValueByTypeList(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.Lists.RPush(ctx, "k", "a", "b")
	val, err := client.GetValueByType(ctx, "k")
	if err != nil {
		t.Fatalf("GetValueByType failed: %v", err)
	}
	if !reflect.DeepEqual(val, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", val)
	}
}

func TestClientGetValueByTypeHash(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.Hashes.Set(ctx, "k", "f", "v")
	val, err := client.GetValueByType(ctx, "k")
	if err != nil {
		t.Fatalf("GetValueByType failed: %v", err)
	}
	if !reflect.DeepEqual(val, map[string]string{"f": "v"}) {
		t.Errorf("expected map[f:v], got %v", val)
	}
}

func TestClientGetValueByTypeSet(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.Sets.Add(ctx, "k", "x", "y")
	val, err := client.GetValueByType(ctx, "k")
	if err != nil {
		t.Fatalf("GetValueByType failed: %v", err)
	}
	members, ok := val.([]string)
	if !ok {
		t.Fatalf("expected []string, got %T", val)
	}
	sort.Strings(members)
	if !reflect.DeepEqual(members, []string{"x", "y"}) {
		t.Errorf("expected [x y], got %v", members)
	}
}

func TestClientGetValueByTypeMissing(t *testing.T) {
	client, _ := newTestClient(t)

	val, err := client.GetValueByType(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected no error for missing key, got %v", err)
	}
	if val != nil {
		t.Errorf("expected nil for missing key, got %v", val)
	}
}

func TestClientGetValueByTypeUnsupported(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.Unwrap().ZAdd(ctx, "scores", goredis.Z{Score: 1, Member: "a"})

	val, err := client.GetValueByType(ctx, "scores")
	if err != nil {
		t.Fatalf("expected soft outcome for zset, got error %v", err)
	}
	if val != "unsupported type: zset" {
		t.Errorf("expected unsupported-type string, got %v", val)
	}
}

func TestClientCloseIdempotent(t *testing.T) {
	client, _ := newTestClient(t)

	if err := client.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestClientOperationsAfterClose(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	client.Close()

	_, err := client.KeyExists(ctx, "k")
	if rediserrors.CodeOf(err) != rediserrors.ErrCodeNotConnected {
		t.Fatalf("expected NOT_CONNECTED after Close, got %v", err)
	}
	if client.Ping(ctx) {
		t.Error("expected Ping false after Close")
	}
}

func TestClientNewFromEnv(t *testing.T) {
	mini := newTestMini(t)
	cfg := newTestConfig(t, mini)

	clearRedisEnv(t)
	t.Setenv(EnvAddr, cfg.Host)
	t.Setenv(EnvPort, strconv.Itoa(cfg.Port))

	client, err := NewFromEnv(context.Background(), "", logger.NewDefault("rediskit-test"))
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	defer client.Close()

	if !client.Ping(context.Background()) {
		t.Error("expected live client from env config")
	}
}

func TestClientWithScoped(t *testing.T) {
	mini := newTestMini(t)
	cfg := newTestConfig(t, mini)
	ctx := context.Background()

	var scoped *Client
	err := With(ctx, cfg, logger.NewDefault("rediskit-test"), func(c *Client) error {
		scoped = c
		return c.Strings.Set(ctx, "scoped", "v")
	})
	if err != nil {
		t.Fatalf("With failed: %v", err)
	}
	if scoped.Ping(ctx) {
		t.Error("expected connection released after With returns")
	}
	if got, _ := mini.Get("scoped"); got != "v" {
		t.Errorf("expected scoped write to land, got %q", got)
	}
}
