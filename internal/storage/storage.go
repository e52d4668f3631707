// Package storage is the client's key/value state: a durable "local" space
// that survives restarts and a "session" space for one-shot values.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

// Namespaces used by the storefront.
const (
	NamespaceLocal   = "local"
	NamespaceSession = "session"
)

// Store holds raw string values under fixed keys. Writes are last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
