package store

import _ "embed"

//go:embed schema/postgres.sql
var PostgresSchema string

//go:embed schema/sqlite.sql
var SQLiteSchema string
