package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. They are
// applied at startup through golang-migrate's iofs driver.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
