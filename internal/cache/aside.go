package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gullyconnect/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit the cached JSON is
// unmarshalled into dest; on a miss fetch is expected to populate dest, and
// the result is stored under key with the given TTL. Cache failures fall
// through to fetch so Redis outages never fail reads.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	prefix := keyPrefix(key)

	if client != nil {
		raw, err := client.Get(ctx, key).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(raw), dest); err == nil {
				observability.CacheHits.WithLabelValues(prefix, "hit").Inc()
				return nil
			}
			// Corrupt entry, drop it and refetch
			client.Del(ctx, key)
		} else if !errors.Is(err, redis.Nil) {
			observability.CacheHits.WithLabelValues(prefix, "error").Inc()
		}
	}

	observability.CacheHits.WithLabelValues(prefix, "miss").Inc()

	if err := fetch(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}
	return nil
}

func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
