package service

import (
	"context"
	"io"
)

// ObjectStorage stores todo images in a single bucket.
type ObjectStorage interface {
	// Upload writes body under key.
	Upload(ctx context.Context, key, contentType string, body io.Reader) error

	// Remove deletes the objects under keys. Missing objects are not an error.
	Remove(ctx context.Context, keys ...string) error

	// PublicURL returns the publicly resolvable URL of key.
	PublicURL(key string) string

	// KeyFromURL recovers the object key from a URL built by PublicURL.
	KeyFromURL(rawURL string) (string, bool)
}
