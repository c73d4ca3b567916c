// Package migrations embeds the kv schema migrations for the sqlite backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
