// Package textutil provides the small text helpers shared by the caption and
// output-naming code.
//
// The primary use cases are:
//   - Greedy word wrapping of captions to a character width
//   - Counting caption length in characters rather than bytes
//   - Validating file name stems
package textutil
