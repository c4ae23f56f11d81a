// Package captions gathers the four caption strings and the output file name.
//
// Collector drives the interactive prompts over any reader/writer pair so the
// CLI can hand it stdin/stdout and tests can hand it buffers. CheckCaptions
// applies the same length rule to captions supplied up front.
package captions
