//go:build integration

package events_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/JaimeStill/event-builder/internal/events"
	"github.com/JaimeStill/event-builder/migrations"
	"github.com/JaimeStill/event-builder/pkg/database"
	"github.com/JaimeStill/event-builder/pkg/lifecycle"
)

func startPostgres(t *testing.T) events.System {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pg, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("eventsdb"),
		tcpostgres.WithUsername("events"),
		tcpostgres.WithPassword("events"),
		tcpostgres.WithSQLDriver("pgx"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &database.Config{DSN: dsn}
	require.NoError(t, cfg.Finalize(nil))

	db, err := database.New(cfg, migrations.FS, logger)
	require.NoError(t, err)

	lc := lifecycle.New()
	require.NoError(t, db.Start(lc))
	t.Cleanup(func() { _ = lc.Shutdown(cfg.ConnTimeoutDuration()) })

	return events.New(db.Connection(), logger)
}

func ptr(v int64) *int64 { return &v }

func TestIntegration_UpsertReplaces(t *testing.T) {
	sys := startPostgres(t)
	ctx := context.Background()

	_, err := sys.Upsert(ctx, events.Event{ID: "gala", Title: "first", Images: []string{"/a.png"}})
	require.NoError(t, err)

	stored, err := sys.Upsert(ctx, events.Event{
		ID:    "gala",
		Title: "second",
		Pages: []events.Page{{ID: "p2", HTML: "<b>2</b>"}, {ID: "p1"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "second", stored.Title)
	assert.Empty(t, stored.Images, "full replacement clears images")
	require.Len(t, stored.Pages, 2)
	assert.Equal(t, "p2", stored.Pages[0].ID)
	assert.Equal(t, "p1", stored.Pages[1].ID)

	all, err := sys.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIntegration_ListOrder(t *testing.T) {
	sys := startPostgres(t)
	ctx := context.Background()

	for _, e := range []events.Event{
		{ID: "a", UpdatedAt: ptr(100)},
		{ID: "none-b"},
		{ID: "c", UpdatedAt: ptr(300)},
		{ID: "none-a"},
		{ID: "b", UpdatedAt: ptr(200)},
	} {
		_, err := sys.Upsert(ctx, e)
		require.NoError(t, err)
	}

	all, err := sys.List(ctx)
	require.NoError(t, err)

	ids := make([]string, len(all))
	for i, e := range all {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"c", "b", "a", "none-a", "none-b"}, ids)
	assert.Nil(t, all[3].UpdatedAt)
}

func TestIntegration_FindAndDelete(t *testing.T) {
	sys := startPostgres(t)
	ctx := context.Background()

	_, err := sys.Find(ctx, "missing")
	assert.ErrorIs(t, err, events.ErrNotFound)

	ok, err := sys.Delete(ctx, "missing")
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = sys.Upsert(ctx, events.Event{ID: "gala", Pages: []events.Page{{ID: "intro", Title: "Hi"}}})
	require.NoError(t, err)

	page, err := sys.FindPage(ctx, "gala", "intro")
	require.NoError(t, err)
	assert.Equal(t, "Hi", page.Title)

	_, err = sys.FindPage(ctx, "gala", "nope")
	assert.ErrorIs(t, err, events.ErrPageNotFound)

	_, err = sys.Delete(ctx, "gala")
	require.NoError(t, err)

	_, err = sys.Find(ctx, "gala")
	assert.ErrorIs(t, err, events.ErrNotFound)
}

func TestIntegration_ConcurrentUpserts(t *testing.T) {
	sys := startPostgres(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Go(func() {
			if _, err := sys.Upsert(ctx, events.Event{ID: "race", Title: fmt.Sprintf("writer-%d", i)}); err != nil {
				errs <- err
			}
		})
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err, "concurrent upsert")
	}

	all, err := sys.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "race", all[0].ID)
}
