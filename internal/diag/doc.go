// Package diag turns plain parse errors into located, human-readable
// diagnostics: a 1-based line/column position, a rendered source excerpt
// with an arrow on the offending line, and a per-error suggestion.
//
// Parser errors are small structured signals; this package is the
// presentation layer that enriches them for user display. Nothing in the
// parser depends on diag.
package diag
