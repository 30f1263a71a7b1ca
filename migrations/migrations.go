// Package migrations embeds the PostgreSQL schema applied by
// database.Migrate at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
