// Package render draws caption strips.
//
// A strip is a translucent black band as wide as a panel and one fifth of its
// height. Captions are wrapped to the number of characters that fit across
// the band, estimated from the caption's own average glyph advance, and drawn
// in white starting a quarter of the font size from the top.
package render
