package crudgen

import (
	"io/fs"

	"github.com/goliatone/go-crudgen/pkg/boilerplate"
)

// EmbeddedBoilerplates exposes the bundled boilerplate set so callers can
// inspect or copy it without importing the boilerplate package directly.
func EmbeddedBoilerplates() fs.FS {
	return boilerplate.EmbeddedFS()
}
