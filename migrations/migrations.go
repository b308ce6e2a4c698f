// Package migrations embeds the SQL schema migrations for MySQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
