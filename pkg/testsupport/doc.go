// Package testsupport holds golden-file and fixture helpers shared by package
// tests.
package testsupport
