package main

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/JaimeStill/event-builder/internal/events"
)

type recordingSystem struct {
	mu       sync.Mutex
	upserted []events.Event
}

func (r *recordingSystem) List(ctx context.Context) ([]events.Event, error) {
	return r.upserted, nil
}

func (r *recordingSystem) Find(ctx context.Context, id string) (*events.Event, error) {
	return nil, events.ErrNotFound
}

func (r *recordingSystem) FindPage(ctx context.Context, id, pageID string) (*events.Page, error) {
	return nil, events.ErrNotFound
}

func (r *recordingSystem) Upsert(ctx context.Context, e events.Event) (*events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserted = append(r.upserted, e)
	return &e, nil
}

func (r *recordingSystem) Delete(ctx context.Context, id string) (bool, error) {
	return true, nil
}

func TestEventSeeder_Embedded(t *testing.T) {
	sys := &recordingSystem{}
	if err := (&EventSeeder{}).Seed(context.Background(), sys); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if len(sys.upserted) != 2 {
		t.Fatalf("upserted %d events, want 2", len(sys.upserted))
	}

	if sys.upserted[0].ID != "welcome" {
		t.Errorf("first id = %q, want welcome", sys.upserted[0].ID)
	}

	if len(sys.upserted[0].Pages) != 2 {
		t.Errorf("welcome pages = %d, want 2", len(sys.upserted[0].Pages))
	}
}

func TestEventSeeder_ExternalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	body := `{"events":[{"id":"external","title":"From file"}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	seeder := &EventSeeder{}
	seeder.SetFile(path)

	sys := &recordingSystem{}
	if err := seeder.Seed(context.Background(), sys); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if len(sys.upserted) != 1 || sys.upserted[0].Title != "From file" {
		t.Errorf("upserted = %+v", sys.upserted)
	}
}

func TestEventSeeder_MissingFile(t *testing.T) {
	seeder := &EventSeeder{}
	seeder.SetFile(filepath.Join(t.TempDir(), "missing.json"))

	if err := seeder.Seed(context.Background(), &recordingSystem{}); err == nil {
		t.Error("expected error for missing seed file")
	}
}

func TestRunSeeder_Unknown(t *testing.T) {
	if err := runSeeder(context.Background(), &recordingSystem{}, "nope"); err == nil {
		t.Error("expected error for unknown seeder")
	}
}

func TestListSeeders(t *testing.T) {
	list := listSeeders()
	if len(list) == 0 || list[0].Name() != "events" {
		t.Errorf("listSeeders() = %v", list)
	}
}

func TestEventSeeder_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	body := `events:
  - id: yaml-event
    title: From YAML
    updatedAt: 42
    pages:
      - id: p1
        html: "<p>hi</p>"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	seeder := &EventSeeder{}
	seeder.SetFile(path)

	sys := &recordingSystem{}
	if err := seeder.Seed(context.Background(), sys); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if len(sys.upserted) != 1 {
		t.Fatalf("upserted %d events, want 1", len(sys.upserted))
	}

	got := sys.upserted[0]
	if got.ID != "yaml-event" || got.UpdatedAt == nil || *got.UpdatedAt != 42 {
		t.Errorf("upserted = %+v", got)
	}

	if len(got.Pages) != 1 || got.Pages[0].HTML != "<p>hi</p>" {
		t.Errorf("pages = %+v", got.Pages)
	}
}

func TestEventSeeder_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing events", `{}`},
		{"missing id", `{"events":[{"title":"no id"}]}`},
		{"empty id", `{"events":[{"id":""}]}`},
		{"wrong updatedAt type", `{"events":[{"id":"a","updatedAt":"yesterday"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seed.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}

			seeder := &EventSeeder{}
			seeder.SetFile(path)

			sys := &recordingSystem{}
			if err := seeder.Seed(context.Background(), sys); err == nil {
				t.Error("expected validation error")
			}

			if len(sys.upserted) != 0 {
				t.Errorf("upserted %d events, want 0", len(sys.upserted))
			}
		})
	}
}
