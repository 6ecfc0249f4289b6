package blobstore

import (
	"context"
	"errors"
	"path"
)

// ErrNotFound is returned by Get when nothing was ever written under the key.
var ErrNotFound = errors.New("blob not found")

// Store is a namespaced key-value store of opaque documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Namespace joins a store name and a site identifier into the prefix every backend
// places keys under.
func Namespace(storeName, siteID string) string {
	return path.Join(storeName, siteID)
}

// Key returns the fully qualified key of name inside namespace.
func Key(namespace, name string) string {
	return path.Join(namespace, name)
}
