package intake

import (
	"fmt"
	"image"
	"os"

	"photostrip/internal/failure"
	"photostrip/internal/geometry"
)

// Ordinals names the photo positions, left to right in the composite.
var Ordinals = [geometry.PhotoCount]string{"first", "second", "third", "fourth"}

// Photo is one validated input.
type Photo struct {
	Path    string
	Index   int
	Ordinal string
	Width   int
	Height  int
	Format  string
	Bytes   int64
}

// Size returns the photo dimensions as a point.
func (p Photo) Size() image.Point {
	return image.Pt(p.Width, p.Height)
}

// Area is the pixel count.
func (p Photo) Area() int {
	return p.Width * p.Height
}

// Decode reads and decodes the full image.
func (p Photo) Decode() (image.Image, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, stageName, "open", p.Ordinal+" photo", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, failure.Wrap(failure.ErrValidation, stageName, "decode", p.Ordinal+" photo", err)
	}
	if img.Bounds().Size() != p.Size() {
		return nil, failure.Wrap(failure.ErrValidation, stageName, "decode",
			fmt.Sprintf("%s photo changed size since validation", p.Ordinal), nil)
	}
	return img, nil
}

// Sizes collects the dimensions of photos in order.
func Sizes(photos []Photo) []image.Point {
	sizes := make([]image.Point, 0, len(photos))
	for _, p := range photos {
		sizes = append(sizes, p.Size())
	}
	return sizes
}

// Paths collects the source paths of photos in order.
func Paths(photos []Photo) []string {
	paths := make([]string, 0, len(photos))
	for _, p := range photos {
		paths = append(paths, p.Path)
	}
	return paths
}
