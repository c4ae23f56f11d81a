// Package preflight provides readiness checks for the paths and font that a
// photostrip run depends on.
//
// The CLI "photostrip check" command prints each Result as a status line so
// problems surface before the user has typed four captions.
package preflight
