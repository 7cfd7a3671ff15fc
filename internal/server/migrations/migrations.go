// Package migrations embeds the goose SQL migrations for the foto database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
