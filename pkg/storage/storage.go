package storage

import (
	"context"

	"github.com/JaimeStill/event-builder/pkg/lifecycle"
)

// System defines the blob storage operations used by the upload store.
type System interface {
	// Store saves data at the specified key, overwriting any existing content.
	// Parent directories are created as needed.
	// Returns ErrInvalidKey if the key is empty or escapes the content root.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Start creates the content root. It returns an error when the root
	// cannot be created, which aborts service startup.
	Start(lc *lifecycle.Coordinator) error
}
