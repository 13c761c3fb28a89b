package storage

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"todo/internal/domain/service"
	"todo/internal/errors"
	"todo/internal/infra/backend"
)

const (
	objectPath       = "/storage/v1/object/"
	publicObjectPath = "/storage/v1/object/public/"
)

// backendStorage implements ObjectStorage on the hosted storage API.
type backendStorage struct {
	client *backend.Client
	tokens service.TokenSource
	bucket string
	logger *slog.Logger
}

// NewBackendStorage creates an ObjectStorage over the hosted bucket.
func NewBackendStorage(client *backend.Client, tokens service.TokenSource, bucket string, logger *slog.Logger) service.ObjectStorage {
	return &backendStorage{
		client: client,
		tokens: tokens,
		bucket: bucket,
		logger: logger,
	}
}

// Upload writes body under key.
func (s *backendStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.Do(ctx, backend.Request{
		Operation:   "storage.upload",
		Method:      http.MethodPost,
		Path:        objectPath + s.bucket + "/" + escapeKey(key),
		Header:      http.Header{"Cache-Control": {"max-age=3600"}},
		Token:       s.tokens.AccessToken(),
		Body:        body,
		ContentType: contentType,
	}, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to upload %s", key)
	}

	return nil
}

// Remove deletes keys in one call.
func (s *backendStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := s.client.Do(ctx, backend.Request{
		Operation: "storage.remove",
		Method:    http.MethodDelete,
		Path:      objectPath + s.bucket,
		Token:     s.tokens.AccessToken(),
		JSON:      map[string][]string{"prefixes": keys},
	}, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to remove %s", strings.Join(keys, ","))
	}

	return nil
}

// PublicURL returns the public URL of key.
func (s *backendStorage) PublicURL(key string) string {
	return s.publicPrefix() + escapeKey(key)
}

// KeyFromURL recovers the key from a URL built by PublicURL.
func (s *backendStorage) KeyFromURL(rawURL string) (string, bool) {
	return keyFromPrefix(s.publicPrefix(), rawURL)
}

func (s *backendStorage) publicPrefix() string {
	return s.client.BaseURL() + publicObjectPath + s.bucket + "/"
}

// escapeKey escapes each path segment of key.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}

func keyFromPrefix(prefix, rawURL string) (string, bool) {
	if prefix == "" || !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}

	escaped := strings.TrimPrefix(rawURL, prefix)
	if i := strings.IndexAny(escaped, "?#"); i >= 0 {
		escaped = escaped[:i]
	}

	key, err := url.PathUnescape(escaped)
	if err != nil || key == "" {
		return "", false
	}

	return key, true
}
