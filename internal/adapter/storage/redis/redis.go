package redis

import (
	"context"
	"fmt"
	"strings"

	"pet-world-gateway/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// namespace prefixes every key the gateway writes, so one Redis database can
// be shared with other services.
const namespace = "petworld"

// key joins parts under the gateway namespace: key("ratelimit", "x") is
// "petworld:ratelimit:x".
func key(parts ...string) string {
	return namespace + ":" + strings.Join(parts, ":")
}

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("namespace", namespace).
		Msg("Redis connection established")

	return client, nil
}
