// Package migrations embeds the goose migrations of the report archive.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
