package migrations

import "embed"

// FS embeds the SQL schema. golang-migrate reads it through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
