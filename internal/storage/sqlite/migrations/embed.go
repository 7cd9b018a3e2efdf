package migrations

import "embed"

// FS contains the embedded atlas schema.
//
//go:embed *.sql
var FS embed.FS
