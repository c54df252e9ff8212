package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"course-planner/internal/domain"
)

// GetJSON reads key and decodes it into v. It returns domain.ErrCacheMiss when
// the key is absent.
func GetJSON(ctx context.Context, c domain.Cache, key string, v interface{}) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c domain.Cache, key string, v interface{}, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	return c.Set(ctx, key, string(b), ttl)
}
