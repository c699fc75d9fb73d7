// Package migrations embeds the PostgreSQL schema migrations applied at start-up.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
