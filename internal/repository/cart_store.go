// Package repository persists serialized cart documents.
package repository

import "context"

// CartStore is a key/value store for serialized cart documents.
// Load returns (nil, nil) when the key is absent.
type CartStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
