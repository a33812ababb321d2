package cache

import (
	"context"
	"time"
)

// Cache is a best-effort JSON cache used for the dashboard reports; a nil
// or failing cache must never fail the request.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
