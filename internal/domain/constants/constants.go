// Package constants holds the names shared between configuration and infrastructure.
package constants

// Image storage drivers.
const (
	StorageDriverBackend = "backend"
	StorageDriverBlob    = "blob"

	DefaultImagesBucket = "todos-images"
)

// Remote collections.
const (
	TableTodos = "todos"
	TableUsers = "users"
)
