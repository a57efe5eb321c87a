// Package cache provides a Redis-backed sample cache interchangeable
// with the sqlite store for deployments that share cached vendor data
// across machines.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"vitals/internal/health"
	"vitals/internal/store"
)

// entryTTL bounds how long Redis keeps a payload regardless of the
// service-level freshness check.
const entryTTL = 24 * time.Hour

// Redis caches raw sample payloads in a Redis instance.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}

	return &Redis{client: client}, nil
}

// Close releases the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// envelope wraps a cached payload with its fetch time.
type envelope struct {
	FetchedAt time.Time          `json:"fetched_at"`
	Samples   []health.RawSample `json:"samples"`
}

func cacheKey(metric health.MetricType, period health.Period) string {
	return fmt.Sprintf("vitals:samples:%s:%s", metric, period)
}

// GetSamples returns the cached raw samples for a fetch key, or
// store.ErrNotCached on a miss.
func (r *Redis) GetSamples(metric health.MetricType, period health.Period) ([]health.RawSample, time.Time, error) {
	ctx := context.Background()

	data, err := r.client.Get(ctx, cacheKey(metric, period)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, time.Time{}, store.ErrNotCached
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	var env envelope
	if err := json.Unmarshal([]byte(data), &env); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding cached %s samples: %w", metric, err)
	}

	return env.Samples, env.FetchedAt, nil
}

// PutSamples stores the raw samples for a fetch key.
func (r *Redis) PutSamples(metric health.MetricType, period health.Period, samples []health.RawSample) error {
	env := envelope{FetchedAt: time.Now(), Samples: samples}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding %s samples: %w", metric, err)
	}

	return r.client.Set(context.Background(), cacheKey(metric, period), data, entryTTL).Err()
}
