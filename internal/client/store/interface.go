// Package store provides durable key-value persistence for the client,
// the survives-a-restart half of the session state. Values are opaque
// byte blobs.
package store

import "context"

// Repository is a small key-value store. Get returns (nil, nil) for a
// missing key; callers treat absent and present-but-unparsable values
// the same way (as absent).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
