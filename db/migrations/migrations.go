package migrations

import "embed"

// FS embeds the SQL migration files in this directory; the migrate
// runner reads them through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the embedded migrations converge on.
const Version = 1
