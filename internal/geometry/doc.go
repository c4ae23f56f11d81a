// Package geometry computes the sizes and offsets used to build a photostrip.
//
// Everything here is a pure function of the unified panel size: the font size,
// the caption character limit, the centered crop rectangle, the caption strip
// placement, and the composite dimensions. Keeping the arithmetic in one place
// lets intake, rendering, and composition agree on a single layout.
package geometry
