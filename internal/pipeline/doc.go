// Package pipeline runs the repeat phases over a loaded reference: suffix
// order, scan, range merge, and optional approximate grouping. It logs phase
// counts and reports progress, and leaves all output to its callers.
//
// The only contract to implement is Orderer (suffix order for a sequence).
// This keeps the order source swappable and testable.
package pipeline
