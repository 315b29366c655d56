// Package migrations embeds the SQLite schema for the save-slot store.
package migrations

import "embed"

// FS holds the golang-migrate up/down files.
//
//go:embed *.sql
var FS embed.FS
