package boilerplate

import (
	"embed"
	"io/fs"
)

//go:embed boilerplates/*.js boilerplates/manifest.yaml
var embeddedBoilerplates embed.FS

// EmbeddedFS returns the bundled express-mongoose boilerplate set.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedBoilerplates, "boilerplates")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
