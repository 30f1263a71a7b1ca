// Package events stores event documents in PostgreSQL and exposes them over HTTP.
// Each event is persisted as a single row whose pages and images are JSONB
// columns, so an upsert always replaces the whole document atomically.
package events

import "context"

// System defines the event document store.
type System interface {
	// List returns every event, most recently updated first.
	// Events without updatedAt sort last; ties break by id.
	List(ctx context.Context) ([]Event, error)

	// Find returns the event with the given id or ErrNotFound.
	Find(ctx context.Context, id string) (*Event, error)

	// FindPage returns one page of an event.
	// Returns ErrNotFound or ErrPageNotFound when either is absent.
	FindPage(ctx context.Context, id, pageID string) (*Page, error)

	// Upsert inserts or fully replaces the event keyed by e.ID and returns
	// the stored document. Returns ErrValidation when the id is empty or a
	// string field holds a NUL character.
	Upsert(ctx context.Context, e Event) (*Event, error)

	// Delete removes the event if present. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
