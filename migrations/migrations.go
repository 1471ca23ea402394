// Package migrations embeds the SQL schema of the relational ledger.
package migrations

import "embed"

//go:embed postgres/*.sql
var FS embed.FS

const PostgresDir = "postgres"
