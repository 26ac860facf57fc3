// Package storage is the durable key-value store behind the session. It
// plays the role browser localStorage played for the web client.
package storage

import "context"

// KeyValue stores scalar strings. Get returns "" with a nil error for a
// missing key; callers treat empty as absent.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
