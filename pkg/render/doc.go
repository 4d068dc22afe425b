// Package render turns boilerplate templates into generated files. An Artifact
// knows which template it uses, which slots it fills and where its output
// lands; the Writer resolves the destination and performs the write.
package render
