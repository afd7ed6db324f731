package migrations

import "embed"

// FS contains embedded SQLite migrations for contract state.
//
//go:embed *.sql
var FS embed.FS
