package config

import (
    "context"
    "crypto/tls"
    "os"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// redisAddr resolves the server address.  REDIS_HOST/REDIS_PORT win over
// REDIS_ADDR so compose-style deployments can override a baked-in addr.
func redisAddr() string {
    if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
        return host + ":" + port
    }
    return getenv("REDIS_ADDR", "localhost:6379")
}

// NewRedisClient builds the client shared by the media response cache and
// the token bucket rate limiter.  Configuration comes from REDIS_HOST,
// REDIS_PORT, REDIS_ADDR, REDIS_PASSWORD, REDIS_DB and REDIS_TLS.  The
// server is pinged once with a short timeout; on failure nil is returned
// and main wires the API without caching or rate limiting, so the catalog
// stays up when Redis is absent.
func NewRedisClient() *redis.Client {
    opts := &redis.Options{
        Addr:     redisAddr(),
        Password: os.Getenv("REDIS_PASSWORD"),
        DB:       atoi(getenv("REDIS_DB", "0")),
    }
    if v := os.Getenv("REDIS_TLS"); strings.EqualFold(v, "true") || v == "1" {
        opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
    }

    client := redis.NewClient(opts)
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
