package service

import "context"

// ViewCache stores serialized read projections by key. Every key carries a
// version that Delete advances, so a reader that loaded its value before an
// invalidation cannot store it afterwards.
type ViewCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Version reports the key's current version. Read it before loading the
	// value from the source of truth.
	Version(ctx context.Context, key string) (int64, error)

	// SetIfVersion stores value only while the key is still at version.
	SetIfVersion(ctx context.Context, key string, version int64, value []byte) (stored bool, err error)

	// Delete removes the values and advances the versions.
	Delete(ctx context.Context, keys ...string) error
}
