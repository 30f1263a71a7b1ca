package events

import (
	"fmt"
	"strings"
)

// Event is a document of ordered pages keyed by a caller-supplied id.
type Event struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Pages     []Page   `json:"pages"`
	Styles    string   `json:"styles"`
	Images    []string `json:"images"`
	UpdatedAt *int64   `json:"updatedAt"`
}

// Page is embedded in an Event and is not addressable on its own.
type Page struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	CoverURL           string `json:"coverUrl"`
	BackgroundURL      string `json:"backgroundUrl"`
	HTML               string `json:"html"`
	PreviewTitle       string `json:"previewTitle"`
	PreviewDescription string `json:"previewDescription"`
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (e *Event) Normalize() {
	if e.Pages == nil {
		e.Pages = []Page{}
	}
	if e.Images == nil {
		e.Images = []string{}
	}
}

// FindPage returns the first page with the given id.
func (e *Event) FindPage(pageID string) (*Page, bool) {
	for i := range e.Pages {
		if e.Pages[i].ID == pageID {
			return &e.Pages[i], true
		}
	}
	return nil, false
}

// Validate reports a wrapped ErrValidation when the id is empty or any string
// field holds a NUL character, which PostgreSQL text and jsonb cannot store.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}

	if err := rejectNUL("id", e.ID, "title", e.Title, "styles", e.Styles); err != nil {
		return err
	}

	for i, img := range e.Images {
		if err := rejectNUL(fmt.Sprintf("images[%d]", i), img); err != nil {
			return err
		}
	}

	for i, p := range e.Pages {
		prefix := fmt.Sprintf("pages[%d].", i)
		err := rejectNUL(
			prefix+"id", p.ID,
			prefix+"title", p.Title,
			prefix+"coverUrl", p.CoverURL,
			prefix+"backgroundUrl", p.BackgroundURL,
			prefix+"html", p.HTML,
			prefix+"previewTitle", p.PreviewTitle,
			prefix+"previewDescription", p.PreviewDescription,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// rejectNUL takes alternating field names and values.
func rejectNUL(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.ContainsRune(pairs[i+1], 0) {
			return fmt.Errorf("%w: %s contains a NUL character", ErrValidation, pairs[i])
		}
	}
	return nil
}
