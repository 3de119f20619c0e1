// Package discovery resolves the KiCad project that lives at or under a
// directory. A Finder runs a concurrent walk (see package walker) on a
// background goroutine, bounds it with a timeout, and reduces the candidates
// to exactly one project file or one of a small set of typed errors.
package discovery
