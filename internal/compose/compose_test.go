package compose_test

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"photostrip/internal/compose"
	"photostrip/internal/failure"
	"photostrip/internal/geometry"
	"photostrip/internal/testsupport"
)

func TestCenterCropSizes(t *testing.T) {
	size := image.Pt(150, 150)
	for _, src := range []image.Point{{150, 1477}, {1108, 1477}, {1477, 150}, {1477, 1108}} {
		cropped := compose.CenterCrop(testsupport.Solid(src.X, src.Y, color.White), size)
		if cropped.Bounds() != image.Rect(0, 0, 150, 150) {
			t.Fatalf("crop of %v has bounds %v", src, cropped.Bounds())
		}
	}
}

func TestCenterCropTakesCentre(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), A: 255})
		}
	}
	cropped := compose.CenterCrop(src, image.Pt(4, 2))
	// offsets ((10-4)/2, (6-2)/2) = (3, 2)
	if got := cropped.RGBAAt(0, 0); got.R != 30 || got.G != 20 {
		t.Fatalf("unexpected top-left pixel %v", got)
	}
	if got := cropped.RGBAAt(3, 1); got.R != 60 || got.G != 30 {
		t.Fatalf("unexpected bottom-right pixel %v", got)
	}
}

func TestCenterCropHandlesOffsetBounds(t *testing.T) {
	base := testsupport.Solid(20, 20, color.White)
	sub := base.SubImage(image.Rect(5, 5, 15, 15))
	cropped := compose.CenterCrop(sub, image.Pt(4, 4))
	if cropped.Bounds().Min != (image.Point{}) {
		t.Fatalf("expected origin-based bounds, got %v", cropped.Bounds())
	}
}

func TestOverlayBlendsStrip(t *testing.T) {
	size := image.Pt(150, 200)
	panel := testsupport.Solid(size.X, size.Y, color.White)
	strip := image.NewNRGBA(image.Rectangle{Max: geometry.StripSize(size)})
	for i := 0; i < len(strip.Pix); i += 4 {
		strip.Pix[i+3] = 175
	}

	compose.Overlay(panel, strip, geometry.StripOffset(size))

	if got := panel.RGBAAt(75, 159); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("pixel above strip changed: %v", got)
	}
	got := panel.RGBAAt(75, 160)
	if got.R != 80 || got.G != 80 || got.B != 80 || got.A != 255 {
		t.Fatalf("expected translucent black over white, got %v", got)
	}
	if got := panel.RGBAAt(149, 199); got.R != 80 {
		t.Fatalf("expected strip to reach the bottom-right corner, got %v", got)
	}
}

func TestConcatenate(t *testing.T) {
	size := image.Pt(150, 150)
	colors := []color.RGBA{
		{R: 255, A: 255},
		{G: 128, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, A: 255},
	}
	panels := make([]image.Image, 0, len(colors))
	for _, c := range colors {
		panels = append(panels, testsupport.Solid(size.X, size.Y, c))
	}

	out, err := compose.Concatenate(panels, size)
	if err != nil {
		t.Fatalf("Concatenate returned error: %v", err)
	}
	if out.Bounds().Size() != image.Pt(604, 150) {
		t.Fatalf("unexpected size %v", out.Bounds().Size())
	}
	for i, x := range []int{75, 226, 377, 528} {
		if got := out.RGBAAt(x, 75); got != colors[i] {
			t.Fatalf("pixel (%d,75) = %v, want %v", x, got, colors[i])
		}
	}
	for _, x := range []int{150, 301, 452, 603} {
		if got := out.RGBAAt(x, 10); got != (color.RGBA{A: 255}) {
			t.Fatalf("gap pixel (%d,10) = %v, want black", x, got)
		}
	}
}

func TestConcatenateRequiresFourPanels(t *testing.T) {
	panel := testsupport.Solid(10, 10, color.White)
	if _, err := compose.Concatenate([]image.Image{panel, panel}, image.Pt(10, 10)); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := compose.Concatenate([]image.Image{panel, nil, panel, panel}, image.Pt(10, 10)); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error for nil panel, got %v", err)
	}
}

func TestWriteJPEG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trip.jpg")

	written, err := compose.WriteJPEG(path, testsupport.Solid(64, 32, color.White), 90)
	if err != nil {
		t.Fatalf("WriteJPEG returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() != written {
		t.Fatalf("reported %d bytes, file has %d", written, info.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Fatalf("unexpected dimensions %dx%d", cfg.Width, cfg.Height)
	}
}

func TestWriteJPEGReusesLockFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.jpg")
	img := testsupport.Solid(8, 8, color.White)
	if _, err := compose.WriteJPEG(path, img, 75); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("expected lock file to remain after write: %v", err)
	}
	if _, err := compose.WriteJPEG(path, img, 75); err != nil {
		t.Fatalf("second write with existing lock file: %v", err)
	}
}

func TestWriteJPEGRefusesWhenLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busy.jpg")
	held := flock.New(path + ".lock")
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("acquire test lock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	_, err := compose.WriteJPEG(path, testsupport.Solid(8, 8, color.White), 75)
	if !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected io error while locked, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output while locked, got %v", statErr)
	}
}

func TestWriteJPEGMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.jpg")
	if _, err := compose.WriteJPEG(path, testsupport.Solid(8, 8, color.White), 0); !errors.Is(err, failure.ErrIO) {
		t.Fatalf("expected io error, got %v", err)
	}
}
