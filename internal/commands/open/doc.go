// Package open provides the root "kopen [path]" action: it resolves the
// KiCad project for a file or directory and launches KiCad on it.
package open
