package events

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/event-builder/pkg/query"
	"github.com/JaimeStill/event-builder/pkg/repository"
)

var projection = query.NewProjectionMap("public", "events", "e").
	Project("id", "ID").
	Project("title", "Title").
	Project("pages", "Pages").
	Project("styles", "Styles").
	Project("images", "Images").
	Project("updated_at", "UpdatedAt")

var defaultSort = []query.SortField{
	{Field: "UpdatedAt", Descending: true, NullsLast: true},
	{Field: "ID"},
}

func scanEvent(s repository.Scanner) (Event, error) {
	var (
		e         Event
		pages     []byte
		images    []byte
		updatedAt sql.NullInt64
	)

	if err := s.Scan(&e.ID, &e.Title, &pages, &e.Styles, &images, &updatedAt); err != nil {
		return e, err
	}

	if err := json.Unmarshal(pages, &e.Pages); err != nil {
		return e, fmt.Errorf("decode pages: %w", err)
	}
	if err := json.Unmarshal(images, &e.Images); err != nil {
		return e, fmt.Errorf("decode images: %w", err)
	}
	if updatedAt.Valid {
		v := updatedAt.Int64
		e.UpdatedAt = &v
	}

	e.Normalize()
	return e, nil
}

// upsertArgs encodes e into positional arguments matching upsertSQL.
func upsertArgs(e Event) ([]any, error) {
	e.Normalize()

	pages, err := json.Marshal(e.Pages)
	if err != nil {
		return nil, fmt.Errorf("encode pages: %w", err)
	}
	images, err := json.Marshal(e.Images)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}

	var updatedAt sql.NullInt64
	if e.UpdatedAt != nil {
		updatedAt = sql.NullInt64{Int64: *e.UpdatedAt, Valid: true}
	}

	return []any{e.ID, e.Title, string(pages), e.Styles, string(images), updatedAt}, nil
}
