package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"photostrip/internal/geometry"
	"photostrip/internal/textutil"
)

// DefaultBackgroundAlpha is the strip opacity used when none is configured.
const DefaultBackgroundAlpha = 175

// Renderer draws caption strips for one layout.
type Renderer struct {
	face       font.Face
	layout     geometry.Layout
	background color.NRGBA
	text       image.Image
}

// NewRenderer binds a face to a layout. alpha is the strip background
// opacity, 0..255.
func NewRenderer(face font.Face, layout geometry.Layout, alpha uint8) *Renderer {
	return &Renderer{
		face:       face,
		layout:     layout,
		background: color.NRGBA{A: alpha},
		text:       image.NewUniform(color.White),
	}
}

// Strip returns the caption strip for caption. An empty caption yields the
// bare background.
func (r *Renderer) Strip(caption string) *image.NRGBA {
	size := geometry.StripSize(r.layout.Size())
	strip := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(strip, strip.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	lines := r.Lines(caption)
	if len(lines) == 0 {
		return strip
	}

	fontSize := fixed.I(r.layout.FontSize)
	drawer := font.Drawer{Dst: strip, Src: r.text, Face: r.face}
	left := fontSize / 2
	top := fontSize / 4
	ascent := r.face.Metrics().Ascent
	for _, line := range lines {
		drawer.Dot = fixed.Point26_6{X: left, Y: top + ascent}
		drawer.DrawString(line)
		top += fontSize + fontSize/4
	}
	return strip
}

// Lines wraps caption to the strip width.
func (r *Renderer) Lines(caption string) []string {
	chars := textutil.RuneCount(caption)
	if chars == 0 {
		return nil
	}
	width := WrapWidth(r.layout.Width, font.MeasureString(r.face, caption), chars)
	return textutil.Wrap(caption, width)
}

// WrapWidth is the number of characters per line: the strip width divided by
// the average advance of the caption's characters, less two, never below one.
func WrapWidth(stripWidth int, advance fixed.Int26_6, chars int) int {
	if chars <= 0 || advance <= 0 {
		return max(stripWidth, 1)
	}
	avg := float64(advance) / 64 / float64(chars)
	return max(int(float64(stripWidth)/avg-2), 1)
}
