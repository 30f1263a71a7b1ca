package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JaimeStill/event-builder/internal/events"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&EventSeeder{})
}

// EventSeedData represents the JSON structure for event seed files.
type EventSeedData struct {
	Events []events.Event `json:"events"`
}

// EventSeeder implements Seeder for event documents.
// It loads seed data from an embedded file or an external JSON or YAML file,
// validating it against seeds/schema.json before anything is written.
type EventSeeder struct {
	file string
}

func (s *EventSeeder) Name() string {
	return "events"
}

func (s *EventSeeder) Description() string {
	return "Seeds sample events with their pages"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *EventSeeder) SetFile(path string) {
	s.file = path
}

// Seed upserts every event in the seed data. Upsert replaces by id, so
// running it repeatedly leaves the same records.
func (s *EventSeeder) Seed(ctx context.Context, sys events.System) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, e := range data.Events {
		if _, err := sys.Upsert(ctx, e); err != nil {
			return fmt.Errorf("upsert event %q: %w", e.ID, err)
		}
	}

	return nil
}

func (s *EventSeeder) loadSeedData() (*EventSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		if content, err = toJSON(s.file, content); err != nil {
			return nil, err
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/events.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	if err := validateSeed(content); err != nil {
		return nil, err
	}

	var data EventSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	return &data, nil
}
