package workflow

import (
	"context"
	"image"

	"golang.org/x/image/font"

	"photostrip/internal/geometry"
	"photostrip/internal/intake"
)

// Request describes one composite.
type Request struct {
	// Paths names the four photos, left to right.
	Paths []string
	// Captions, when non-nil, are used instead of prompting.
	Captions []string
	// OutputName, when set, is used as the file stem instead of prompting.
	OutputName string
	// RunID correlates log lines; one is generated when empty.
	RunID string
}

// Result reports what a successful run produced.
type Result struct {
	RunID      string
	OutputPath string
	Photos     []intake.Photo
	Layout     geometry.Layout
	Captions   []string
	Size       image.Point
	Bytes      int64
}

// Prompter asks the user for captions and the output name.
type Prompter interface {
	Collect(ctx context.Context, limit float64) ([]string, error)
	OutputName(ctx context.Context) (string, error)
}

// FaceLoader opens a font face at a pixel size.
type FaceLoader func(path string, size int) (font.Face, error)

// run carries intermediate values between stages.
type run struct {
	req      Request
	photos   []intake.Photo
	unified  image.Point
	layout   geometry.Layout
	captions []string
	name     string
	strips   []*image.NRGBA
	panels   []*image.RGBA
	result   Result
}
