// Package cache is a thin TTL cache over Redis for aggregated dashboard
// responses. Entries are whole-value replaced JSON blobs; there is no
// invalidation on upstream writes, staleness up to the TTL is accepted.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dashboard:"

// ClientProvider returns the Redis client to use, or nil when Redis is not
// (yet) available. Resolved per call because the server starts listening
// before the Redis connection is established.
type ClientProvider func() redis.UniversalClient

// Service caches JSON blobs under string keys with a fixed TTL. When no
// Redis client is available it degrades to always-miss, so the dashboard
// keeps working while Redis is down.
type Service struct {
	provider ClientProvider
	ttl      time.Duration
}

func New(provider ClientProvider, ttl time.Duration) *Service {
	return &Service{provider: provider, ttl: ttl}
}

// GetRaw returns the cached JSON for key, if present and unexpired.
func (s *Service) GetRaw(ctx context.Context, key string) (json.RawMessage, bool, error) {
	client := s.client()
	if client == nil {
		return nil, false, nil
	}
	val, err := client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return json.RawMessage(val), true, nil
}

// SetRaw stores pre-marshalled JSON under key with the service TTL.
func (s *Service) SetRaw(ctx context.Context, key string, value json.RawMessage) error {
	client := s.client()
	if client == nil {
		return nil
	}
	return client.Set(ctx, keyPrefix+key, []byte(value), s.ttl).Err()
}

// Set marshals obj and stores it under key.
func (s *Service) Set(ctx context.Context, key string, obj any) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return s.SetRaw(ctx, key, data)
}

func (s *Service) client() redis.UniversalClient {
	if s == nil || s.provider == nil {
		return nil
	}
	return s.provider()
}
