// Package cli implements the interactive profile card editor: a small REPL
// over the profile service, plus prompt helpers and terminal rendering of the
// card and the preset avatar catalog.
package cli
