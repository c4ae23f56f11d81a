package compose

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"photostrip/internal/failure"
	"photostrip/internal/geometry"
)

const stageName = "compose"

// CenterCrop copies the size-sized centre of img into a new image whose
// bounds start at the origin.
func CenterCrop(img image.Image, size image.Point) *image.RGBA {
	src := geometry.CenterCropRect(img.Bounds(), size)
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	return dst
}

// Overlay alpha-composites strip onto dst with its top-left corner at at.
func Overlay(dst draw.Image, strip image.Image, at image.Point) {
	sb := strip.Bounds()
	target := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(dst, target, strip, sb.Min, draw.Over)
}

// Concatenate places the panels left to right, separated by geometry.Gap
// pixels, on an opaque black canvas.
func Concatenate(panels []image.Image, size image.Point) (*image.RGBA, error) {
	if len(panels) != geometry.PhotoCount {
		return nil, failure.Wrap(failure.ErrValidation, stageName, "concatenate",
			fmt.Sprintf("expected %d panels, got %d", geometry.PhotoCount, len(panels)), nil)
	}
	canvas := image.NewRGBA(image.Rectangle{Max: geometry.CompositeSize(size)})
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	for i, panel := range panels {
		if panel == nil {
			return nil, failure.Wrap(failure.ErrValidation, stageName, "concatenate",
				fmt.Sprintf("panel %d is missing", i+1), nil)
		}
		at := geometry.PanelOffset(i, size)
		draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(size)}, panel, panel.Bounds().Min, draw.Over)
	}
	return canvas, nil
}
