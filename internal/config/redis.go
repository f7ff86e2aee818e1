package config

// Redis backs the dashboard response cache and the public-form rate
// limiter.  Both features are optional: when no server is reachable at
// startup the constructor returns nil and callers run without them.

import (
	"context"
	"crypto/tls"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from the environment:
//
//	REDIS_HOST / REDIS_PORT — server address parts
//	REDIS_ADDR              — host:port shorthand (host/port win when both set)
//	REDIS_PASSWORD          — optional password
//	REDIS_DB                — database number (default 0)
//	REDIS_TLS               — "true" or "1" enables TLS
//
// The client is pinged with a short timeout; nil is returned on
// failure so the caller can degrade gracefully.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		addr = host + ":" + port
	}
	if addr == "" {
		addr = "localhost:6379"
	}
	var tlsConf *tls.Config
	if v := os.Getenv("REDIS_TLS"); strings.EqualFold(v, "true") || v == "1" {
		tlsConf = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      addr,
		Password:  os.Getenv("REDIS_PASSWORD"),
		DB:        atoi(os.Getenv("REDIS_DB")),
		TLSConfig: tlsConf,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
