// Package assets embeds the default word catalog and the SQLite schema.
package assets

import "embed"

// Categories is the default HCL catalog, used when no CATALOG_FILE is set.
//
//go:embed categories.hcl
var Categories []byte

// Migrations holds the catalog schema, applied in lexical file order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
