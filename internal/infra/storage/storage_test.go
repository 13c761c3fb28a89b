package storage

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"todo/config"
	"todo/internal/infra/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

type staticToken string

func (s staticToken) AccessToken() string { return string(s) }

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(url string) *backend.Client {
	return backend.NewClient(backend.ClientParams{
		Config: &config.Config{Backend: &config.BackendConfig{
			URL:            url,
			PublishableKey: "anon-key",
			RequestTimeout: 5 * time.Second,
		}},
		Logger: newDiscardLogger(),
	})
}

func TestBackendStorage_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/todos-images/owner/1700000000000.png", r.URL.Path)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer user-jwt", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "png-bytes", string(body))
		_, _ = w.Write([]byte(`{"Key":"todos-images/owner/1700000000000.png"}`))
	}))
	defer srv.Close()

	storage := NewBackendStorage(newTestClient(srv.URL), staticToken("user-jwt"), "todos-images", newDiscardLogger())

	err := storage.Upload(context.Background(), "owner/1700000000000.png", "image/png", strings.NewReader("png-bytes"))

	assert.NoError(t, err)
}

func TestBackendStorage_Remove(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/storage/v1/object/todos-images", r.URL.Path)

		var body map[string][]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"owner/a.png"}, body["prefixes"])
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	storage := NewBackendStorage(newTestClient(srv.URL), staticToken("t"), "todos-images", newDiscardLogger())

	require.NoError(t, storage.Remove(context.Background(), "owner/a.png"))
	require.NoError(t, storage.Remove(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestBackendStorage_RemoveFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"statusCode":"500","error":"internal","message":"storage unavailable"}`))
	}))
	defer srv.Close()

	storage := NewBackendStorage(newTestClient(srv.URL), staticToken("t"), "todos-images", newDiscardLogger())

	err := storage.Remove(context.Background(), "owner/a.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage unavailable")
}

func TestBackendStorage_PublicURLRoundTrip(t *testing.T) {
	storage := NewBackendStorage(newTestClient("https://proj.example.co"), staticToken("t"), "todos-images", newDiscardLogger())

	publicURL := storage.PublicURL("5f1f/my photo.png")
	assert.Equal(t, "https://proj.example.co/storage/v1/object/public/todos-images/5f1f/my%20photo.png", publicURL)

	key, ok := storage.KeyFromURL(publicURL)
	assert.True(t, ok)
	assert.Equal(t, "5f1f/my photo.png", key)

	key, ok = storage.KeyFromURL(publicURL + "?t=123")
	assert.True(t, ok)
	assert.Equal(t, "5f1f/my photo.png", key)

	_, ok = storage.KeyFromURL("https://elsewhere.example.com/a.png")
	assert.False(t, ok)
}

func TestBlobStorage_MemBucket(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	storage := newBlobStorage(bucket, "http://localhost:8080/images/", newDiscardLogger())
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, storage.Upload(ctx, "owner/a.png", "image/png", strings.NewReader("png-bytes")))

	attrs, err := bucket.Attributes(ctx, "owner/a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	data, err := bucket.ReadAll(ctx, "owner/a.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	publicURL := storage.PublicURL("owner/a.png")
	assert.Equal(t, "http://localhost:8080/images/owner/a.png", publicURL)
	key, ok := storage.KeyFromURL(publicURL)
	require.True(t, ok)

	require.NoError(t, storage.Remove(ctx, key, "owner/missing.png"))
	exists, err := bucket.Exists(ctx, "owner/a.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOpenBlobStorage_FileBucket(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storage, err := OpenBlobStorage(ctx, "file://"+filepath.ToSlash(dir), "http://localhost:8080/images", newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	require.NoError(t, storage.Upload(ctx, "owner/b.jpg", "image/jpeg", strings.NewReader("jpeg-bytes")))
	assert.FileExists(t, filepath.Join(dir, "owner", "b.jpg"))
}

func TestNewObjectStorage(t *testing.T) {
	client := newTestClient("https://proj.example.co")

	newParams := func(cfg *config.StorageConfig) StorageParams {
		return StorageParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Storage: cfg},
			Client: client,
			Tokens: staticToken("t"),
			Logger: newDiscardLogger(),
		}
	}

	t.Run("backend driver", func(t *testing.T) {
		storage, err := NewObjectStorage(newParams(&config.StorageConfig{Driver: "backend", Bucket: "todos-images"}))
		require.NoError(t, err)
		assert.Equal(t, "https://proj.example.co/storage/v1/object/public/todos-images/k", storage.PublicURL("k"))
	})

	t.Run("blob driver", func(t *testing.T) {
		params := newParams(&config.StorageConfig{Driver: "blob", BlobURL: "mem://", PublicBaseURL: "http://cdn.example/"})
		storage, err := NewObjectStorage(params)
		require.NoError(t, err)
		assert.Equal(t, "http://cdn.example/k", storage.PublicURL("k"))
		params.Lc.(*fxtest.Lifecycle).RequireStart().RequireStop()
	})

	t.Run("blob driver needs a URL", func(t *testing.T) {
		_, err := NewObjectStorage(newParams(&config.StorageConfig{Driver: "blob", PublicBaseURL: "http://cdn.example/"}))
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewObjectStorage(newParams(&config.StorageConfig{Driver: "ftp"}))
		assert.Error(t, err)
	})
}
