// Package metadata provides a small durable key-value store used for
// client-local state such as the persisted session.
package metadata

import "context"

// Repository is a string key-value store.
//
// Get returns ("", false, nil) for a missing key rather than an error,
// so callers can treat absence as a normal outcome.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
