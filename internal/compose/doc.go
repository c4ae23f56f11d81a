// Package compose crops, overlays and joins the four panels of a composite
// and writes the result as a JPEG.
package compose
