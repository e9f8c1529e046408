// Package migrations embeds the goose SQL migrations applied at startup.
package migrations

import "embed"

// Embed holds the SQL migration files.
//
//go:embed *.sql
var Embed embed.FS
