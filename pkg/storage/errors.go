// Package storage provides blob storage for uploaded files.
// It defines a System interface for storage operations and a filesystem
// implementation that keeps every key strictly inside a single content root.
package storage

import "errors"

// Storage errors returned by System implementations.
var (
	// ErrNotFound indicates the requested key does not exist in storage.
	ErrNotFound = errors.New("storage: key not found")

	// ErrPermissionDenied indicates insufficient permissions to access the key.
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey indicates the key is empty, absolute, or resolves
	// outside the content root.
	ErrInvalidKey = errors.New("storage: invalid key")
)
