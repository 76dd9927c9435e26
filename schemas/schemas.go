// Package schemas embeds the JSON Schemas for resume data supplied from
// outside the process.
package schemas

import _ "embed"

// Snapshot is the schema for a {document, sectionOrder} snapshot
//
//go:embed snapshot.schema.json
var Snapshot string

// Theme is the schema for a theme configuration
//
//go:embed theme.schema.json
var Theme string

// Files maps each embedded schema file name to its content
var Files = map[string]string{
	"snapshot.schema.json": Snapshot,
	"theme.schema.json":    Theme,
}
