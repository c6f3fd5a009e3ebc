package repository

import "context"

// KeyValue is a durable string-keyed blob store. Cart persistence sits on
// top of it the way a browser cart sits on top of local storage.
type KeyValue interface {
	// Get returns ok=false when nothing is stored under key
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
