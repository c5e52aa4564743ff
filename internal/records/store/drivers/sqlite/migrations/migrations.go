package migrations

import "embed"

// Migrations holds the SQLite schema migrations, applied in order by
// golang-migrate at startup.
//
//go:embed *.sql
var Migrations embed.FS
