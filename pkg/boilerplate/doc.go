// Package boilerplate stores the template texts the generator fills in. A
// boilerplate set is a directory (or fs.FS) holding one file per artifact plus
// an optional manifest.yaml describing the set as a go-theme Manifest: its
// Templates map artifact names to files, and each Variant may swap individual
// files. Override directories are layered in front of the embedded defaults
// so callers can replace one template without copying the rest.
//
// Templates carry placeholder markers (see fragments.Slot). Render verifies
// that every required marker is present before touching the text, turning a
// silently skipped substitution into ErrTemplateMalformed.
package boilerplate
