package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/JaimeStill/event-builder/internal/events"
)

func TestUpsert_RequiresID(t *testing.T) {
	sys := events.New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := sys.Upsert(context.Background(), events.Event{Title: "x"})
	if !errors.Is(err, events.ErrValidation) {
		t.Errorf("Upsert(id=\"\") error = %v, want ErrValidation", err)
	}
}

func TestUpsert_RejectsNUL(t *testing.T) {
	sys := events.New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name  string
		event events.Event
		field string
	}{
		{"id", events.Event{ID: "a\x00b"}, "id"},
		{"title", events.Event{ID: "a", Title: "x\u0000y"}, "title"},
		{"styles", events.Event{ID: "a", Styles: "\x00"}, "styles"},
		{"image", events.Event{ID: "a", Images: []string{"/ok.png", "/bad\x00.png"}}, "images[1]"},
		{"page html", events.Event{ID: "a", Pages: []events.Page{{ID: "p1"}, {ID: "p2", HTML: "<p>\x00</p>"}}}, "pages[1].html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sys.Upsert(context.Background(), tt.event)
			if !errors.Is(err, events.ErrValidation) {
				t.Fatalf("Upsert() error = %v, want ErrValidation", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %s", err, tt.field)
			}
			if events.MapHTTPStatus(err) != http.StatusBadRequest {
				t.Errorf("MapHTTPStatus = %d, want 400", events.MapHTTPStatus(err))
			}
		})
	}
}

func TestValidate_AllowsWhitespaceID(t *testing.T) {
	e := events.Event{ID: "  "}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate(id=%q) error = %v, want nil", e.ID, err)
	}
}
