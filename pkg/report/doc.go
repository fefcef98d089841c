// Package report renders the descriptors published by a compilation pass as a
// human-readable catalog. Templates are pongo2 documents rendered through a
// go-template renderer, loaded from the embedded templates directory, a
// directory on disk or a caller-supplied fs.FS; documentation strings are
// sanitised by template filters before they reach the output.
package report
