// Package template defines the engine contract used to expand destination
// path patterns. The pongo2-backed implementation lives in the gotemplate
// subpackage.
package template
