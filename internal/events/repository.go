package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/JaimeStill/event-builder/pkg/query"
	"github.com/JaimeStill/event-builder/pkg/repository"
)

var tracer = otel.Tracer("github.com/JaimeStill/event-builder/internal/events")

var upsertSQL = `
	INSERT INTO public.events AS e (id, title, pages, styles, images, updated_at)
	VALUES ($1, $2, $3::jsonb, $4, $5::jsonb, $6)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		pages = EXCLUDED.pages,
		styles = EXCLUDED.styles,
		images = EXCLUDED.images,
		updated_at = EXCLUDED.updated_at
	RETURNING ` + projection.Columns()

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an events System backed by db.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "events"),
	}
}

func (r *repo) List(ctx context.Context) (_ []Event, err error) {
	ctx, span := tracer.Start(ctx, "events.List")
	defer func() { finishSpan(span, err) }()

	q, args := query.NewBuilder(projection, defaultSort...).BuildSelect()

	events, err := repository.QueryMany(ctx, r.db, q, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	span.SetAttributes(attribute.Int("events.count", len(events)))
	return events, nil
}

func (r *repo) Find(ctx context.Context, id string) (_ *Event, err error) {
	ctx, span := tracer.Start(ctx, "events.Find", trace.WithAttributes(attribute.String("event.id", id)))
	defer func() { finishSpan(span, err) }()

	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	e, err := repository.QueryOne(ctx, r.db, q, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("find event: %w", repository.MapError(err, ErrNotFound, ErrValidation))
	}
	return &e, nil
}

func (r *repo) FindPage(ctx context.Context, id, pageID string) (*Page, error) {
	e, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	page, ok := e.FindPage(pageID)
	if !ok {
		return nil, ErrPageNotFound
	}
	return page, nil
}

func (r *repo) Upsert(ctx context.Context, e Event) (_ *Event, err error) {
	ctx, span := tracer.Start(ctx, "events.Upsert", trace.WithAttributes(attribute.String("event.id", e.ID)))
	defer func() { finishSpan(span, err) }()

	if err := e.Validate(); err != nil {
		return nil, err
	}

	args, err := upsertArgs(e)
	if err != nil {
		return nil, err
	}

	stored, err := repository.QueryOne(ctx, r.db, upsertSQL, args, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("upsert event: %w", repository.MapError(err, ErrNotFound, ErrValidation))
	}

	r.logger.Info("event saved", "id", stored.ID, "pages", len(stored.Pages))
	return &stored, nil
}

func (r *repo) Delete(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracer.Start(ctx, "events.Delete", trace.WithAttributes(attribute.String("event.id", id)))
	defer func() { finishSpan(span, err) }()

	rows, err := repository.Exec(ctx, r.db, "DELETE FROM public.events WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}

	r.logger.Info("event deleted", "id", id, "existed", rows > 0)
	return true, nil
}

func finishSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrValidation) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
