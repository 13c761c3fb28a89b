package cache

import (
	"context"

	"todo/internal/errors"
)

// ErrUnexpectedType is returned when a key holds data of another type.
var ErrUnexpectedType = errors.New("cached data has an unexpected type")

// Query is the typed form of QueryClient.Fetch.
func Query[T any](ctx context.Context, qc *QueryClient, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	data, err := qc.Fetch(ctx, key, erase(fetch))

	return typed[T](key, data, err)
}

// Refetch is the typed form of QueryClient.Refetch.
func Refetch[T any](ctx context.Context, qc *QueryClient, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	data, err := qc.Refetch(ctx, key, erase(fetch))

	return typed[T](key, data, err)
}

// Cached returns the data currently held for key, fresh or stale.
func Cached[T any](qc *QueryClient, key Key) (T, bool) {
	snap := qc.Peek(key)
	if snap.UpdatedAt.IsZero() {
		var zero T

		return zero, false
	}
	value, ok := snap.Data.(T)

	return value, ok
}

// Patch is the typed form of QueryClient.Update.
func Patch[T any](qc *QueryClient, key Key, fn func(old T) (T, bool)) bool {
	return qc.Update(key, func(old any) (any, bool) {
		value, ok := old.(T)
		if !ok {
			return old, false
		}

		return fn(value)
	})
}

func erase[T any](fetch func(ctx context.Context) (T, error)) FetchFunc {
	return func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}
}

func typed[T any](key Key, data any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}

	value, ok := data.(T)
	if !ok {
		return zero, errors.Wrapf(ErrUnexpectedType, "key %s", key)
	}

	return value, nil
}
