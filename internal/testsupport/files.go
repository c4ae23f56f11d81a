package testsupport

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
)

// Solid returns an opaque w x h image filled with c.
func Solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// WritePNG encodes a solid w x h PNG at path and returns the path.
func WritePNG(t testing.TB, path string, w, h int, c color.Color) string {
	t.Helper()
	writeImage(t, path, func(f *os.File) error {
		return png.Encode(f, Solid(w, h, c))
	})
	return path
}

// WriteJPEG encodes a solid w x h JPEG at path and returns the path.
func WriteJPEG(t testing.TB, path string, w, h int, c color.Color) string {
	t.Helper()
	writeImage(t, path, func(f *os.File) error {
		return jpeg.Encode(f, Solid(w, h, c), &jpeg.Options{Quality: 95})
	})
	return path
}

// WritePhotos writes four PNG fixtures of the given sizes into dir, coloured
// red, green, blue and yellow, and returns their paths in order.
func WritePhotos(t testing.TB, dir string, sizes ...image.Point) []string {
	t.Helper()
	if len(sizes) != 4 {
		t.Fatalf("WritePhotos needs 4 sizes, got %d", len(sizes))
	}
	palette := []color.RGBA{
		{R: 255, A: 255},
		{G: 128, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, A: 255},
	}
	names := []string{"first.png", "second.png", "third.png", "fourth.png"}
	paths := make([]string, 0, len(sizes))
	for i, size := range sizes {
		paths = append(paths, WritePNG(t, filepath.Join(dir, names[i]), size.X, size.Y, palette[i]))
	}
	return paths
}

// WriteFont writes the embedded Go Bold TrueType font to path.
func WriteFont(t testing.TB, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, gobold.TTF, 0o644); err != nil {
		t.Fatalf("write font %s: %v", path, err)
	}
	return path
}

// WriteFile writes size bytes of filler to path. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int) string {
	t.Helper()
	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = 0x42
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func writeImage(t testing.TB, path string, encode func(*os.File) error) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}
