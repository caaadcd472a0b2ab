// Package data bundles the reference files served by default.
package data

import (
	"embed"
	"io/fs"
)

// files embeds the creature, ability and locale tables at build time.
//
//go:embed creatures.yml abilities.yml locale/*.yml
var files embed.FS

// FS returns the bundled data directory
func FS() fs.FS {
	return files
}
