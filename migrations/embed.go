// Package migrations embeds the SQL schema migrations so a deployed
// binary never depends on a migrations directory on disk.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
