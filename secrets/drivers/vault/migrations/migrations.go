// Package migrations embeds the vault schema migration files so they
// compile into the consuming binary.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
