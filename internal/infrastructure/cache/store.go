package cache

import (
	"context"
	"time"
)

// Store is a key-value store with per-key expiration
type Store interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	// Get returns ok=false when the key is missing or expired
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Delete(ctx context.Context, key string) error
	// Pop returns the value and removes the key in one step
	Pop(ctx context.Context, key string) (value string, ok bool, err error)
}
