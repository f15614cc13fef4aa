// Package migrations embeds the SQL schema migrations for the storefront
// database.
package migrations

import "embed"

//go:embed sql/*.sql
var FS embed.FS

// Dir is the directory inside FS containing the migration files.
const Dir = "sql"
