// Package config holds the compiler configuration handed to descriptor
// providers: component definitions, the component provider order, and the
// attribute-matching case rules. Configuration documents are JSON or YAML and
// are loaded from an fs.FS so callers can use the embedded defaults, a local
// directory, or a test fixture interchangeably.
package config
