package geometry

import (
	"errors"
	"image"
	"math"
)

const (
	// PhotoCount is the number of photos placed in every composite.
	PhotoCount = 4
	// MinArea is the smallest accepted pixel area for an input photo.
	MinArea = int(23737.5 * 4)
	// FontRatio is the number of image pixels allotted to one character cell.
	FontRatio = 593.4
	// StripDivisor splits the image height; the caption strip takes one part.
	StripDivisor = 5
	// Gap is the horizontal spacing between panels in the composite.
	Gap = 1
)

// Layout holds the parameters derived from the unified image size.
type Layout struct {
	Width     int
	Height    int
	FontSize  int
	CharLimit float64
}

// Size returns the unified size as a point.
func (l Layout) Size() image.Point {
	return image.Pt(l.Width, l.Height)
}

// MaxChars is the whole-character limit shown to users.
func (l Layout) MaxChars() int {
	return int(l.CharLimit)
}

// NewLayout derives font size and caption limit from the unified size.
func NewLayout(size image.Point) Layout {
	fontSize := FontSize(size.X, size.Y)
	return Layout{
		Width:     size.X,
		Height:    size.Y,
		FontSize:  fontSize,
		CharLimit: CharLimit(size.X, size.Y, fontSize),
	}
}

// Unify returns the minimum width and minimum height across sizes.
func Unify(sizes []image.Point) (image.Point, error) {
	if len(sizes) == 0 {
		return image.Point{}, errors.New("no image sizes to unify")
	}
	unified := sizes[0]
	for _, s := range sizes[1:] {
		unified.X = min(unified.X, s.X)
		unified.Y = min(unified.Y, s.Y)
	}
	return unified, nil
}

// MeetsMinArea reports whether a w x h image is large enough to use.
func MeetsMinArea(w, h int) bool {
	return w*h >= MinArea
}

// FontSize is floor(sqrt(w*h/FontRatio)).
func FontSize(w, h int) int {
	return int(math.Sqrt(float64(w) * float64(h) / FontRatio))
}

// CharLimit is the number of font cells that fit in one strip. A zero font
// size yields zero.
func CharLimit(w, h, fontSize int) float64 {
	if fontSize <= 0 {
		return 0
	}
	stripArea := float64(w) * float64(h) / StripDivisor
	return stripArea / float64(fontSize*fontSize)
}

// CenterCropRect returns the rectangle of the given size centered inside src.
func CenterCropRect(src image.Rectangle, size image.Point) image.Rectangle {
	origin := src.Min.Add(CropOffset(src.Size(), size))
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// CropOffset is the top-left corner of the centered crop relative to the
// source origin. Half-pixel offsets round to even, so a difference of 3
// gives 2 and a difference of 5 gives 2.
func CropOffset(orig, size image.Point) image.Point {
	return image.Pt(halfRoundEven(orig.X-size.X), halfRoundEven(orig.Y-size.Y))
}

func halfRoundEven(d int) int {
	return int(math.RoundToEven(float64(d) / 2))
}

// StripSize is the caption strip size for a panel of the given size.
func StripSize(size image.Point) image.Point {
	return image.Pt(size.X, size.Y/StripDivisor)
}

// StripOffset is where the caption strip is pasted inside a panel.
func StripOffset(size image.Point) image.Point {
	return image.Pt(0, size.Y*(StripDivisor-1)/StripDivisor)
}

// CompositeSize is the size of the final side-by-side image.
func CompositeSize(size image.Point) image.Point {
	return image.Pt((size.X+Gap)*PhotoCount, size.Y)
}

// PanelOffset is the top-left corner of panel i in the composite.
func PanelOffset(i int, size image.Point) image.Point {
	return image.Pt(i*(size.X+Gap), 0)
}
