package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"todo/internal/domain/service"
	"todo/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// BlobStorage implements ObjectStorage on a gocloud.dev bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// OpenBlobStorage opens the bucket at bucketURL (file://, mem://, s3://).
func OpenBlobStorage(ctx context.Context, bucketURL, publicBaseURL string, logger *slog.Logger) (*BlobStorage, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return newBlobStorage(bucket, publicBaseURL, logger), nil
}

func newBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *BlobStorage {
	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/") + "/",
		logger:        logger,
	}
}

var _ service.ObjectStorage = (*BlobStorage)(nil)

// Upload writes body under key.
func (s *BlobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to commit %s", key)
	}

	return nil
}

// Remove deletes every key. Missing objects are skipped; the first other
// failure is returned after all keys were tried.
func (s *BlobStorage) Remove(ctx context.Context, keys ...string) error {
	var errs []error
	for _, key := range keys {
		if err := s.bucket.Delete(ctx, key); err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				continue
			}
			errs = append(errs, errors.Wrapf(err, "failed to remove %s", key))
		}
	}

	return errors.Join(errs...)
}

// PublicURL returns the public URL of key.
func (s *BlobStorage) PublicURL(key string) string {
	return s.publicBaseURL + escapeKey(key)
}

// KeyFromURL recovers the key from a URL built by PublicURL.
func (s *BlobStorage) KeyFromURL(rawURL string) (string, bool) {
	return keyFromPrefix(s.publicBaseURL, rawURL)
}

// Close releases the bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}
