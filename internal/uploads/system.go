// Package uploads stores uploaded binary files under random names and
// serves them back by name.
package uploads

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/event-builder/pkg/storage"
)

// DefaultExtension is used when the uploaded filename has none.
const DefaultExtension = ".bin"

// System defines the upload store.
type System interface {
	// Save stores data under a fresh random name that keeps the extension
	// of filename.
	Save(ctx context.Context, filename string, data []byte) (*Upload, error)

	// Load returns a stored file. Returns ErrNotFound when no file has that
	// name or when the name is not a plain file name.
	Load(ctx context.Context, name string) (*File, error)
}

type system struct {
	store     storage.System
	urlPrefix string
	logger    *slog.Logger
}

// New creates an upload System writing through store.
// urlPrefix is the public path files are served under, e.g. "/api/uploads".
func New(store storage.System, urlPrefix string, logger *slog.Logger) System {
	return &system{
		store:     store,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		logger:    logger.With("system", "uploads"),
	}
}

func (s *system) Save(ctx context.Context, filename string, data []byte) (*Upload, error) {
	name, err := generateName(filename)
	if err != nil {
		return nil, err
	}

	if err := s.store.Store(ctx, name, data); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	s.logger.Info("file uploaded", "name", name, "original", filename, "size", len(data))

	return &Upload{
		Name:        name,
		URL:         s.urlPrefix + "/" + name,
		Size:        int64(len(data)),
		ContentType: contentType(name, data),
	}, nil
}

func (s *system) Load(ctx context.Context, name string) (*File, error) {
	if !validName(name) {
		s.logger.Warn("rejected upload name", "name", name)
		return nil, ErrNotFound
	}

	data, err := s.store.Retrieve(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, storage.ErrInvalidKey) {
			s.logger.Warn("rejected upload name", "name", name, "error", err)
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("retrieve upload: %w", err)
	}

	return &File{
		Name:        name,
		ContentType: contentType(name, data),
		Data:        data,
	}, nil
}

// Extension returns the extension stored names keep for filename.
func Extension(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := filepath.Ext(base)
	if ext == "" || ext == "." || ext == base {
		return DefaultExtension
	}
	return ext
}

func generateName(filename string) (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate name: %w", err)
	}
	return hex.EncodeToString(buf) + Extension(filename), nil
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return false
	}
	return filepath.Base(name) == name
}

func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
