// Package fragments turns a resource descriptor into the text snippets that
// fill boilerplate slots. Every builder is pure and deterministic. Multi-entry
// fragments share one convention: entries are joined by ",\n" and every entry
// after the first carries the fragment's fixed indentation, so zero fields
// yield an empty string and no builder ever emits a leading or trailing
// separator.
package fragments
