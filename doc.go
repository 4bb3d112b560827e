// Package rediskit provides a typed wrapper over go-redis, organizing
// string, list, hash, and set commands into per-type operation groups with
// connection lifecycle management and environment-based configuration.
//
// # Quick Start
//
//	cfg, err := rediskit.FromEnv(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := rediskit.New(ctx, cfg, logger.NewDefault("myapp"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	length, err := client.Lists.RPush(ctx, "queue", "a", "b", "c")
//
// Absent values (missing key or field, pop on an empty list) are reported
// as an ok=false result, never as an error, matching the Redis convention
// of returning nil replies for missing data.
//
// The wrapper adds no retry, timeout, or pooling behavior of its own;
// those belong to go-redis and are reachable through Client.Unwrap.
package rediskit
