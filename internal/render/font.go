package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"photostrip/internal/failure"
)

const stageName = "render"

// LoadFace opens the font at path at size pixels per em. An empty path uses
// the embedded Go Bold face. TrueType/OpenType collections (.ttc, .otc) use
// their first font.
func LoadFace(path string, size int) (font.Face, error) {
	if size <= 0 {
		return nil, failure.Wrap(failure.ErrRender, stageName, "load font",
			fmt.Sprintf("font size must be positive, got %d", size), nil)
	}

	data := gobold.TTF
	name := "embedded Go Bold"
	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, failure.Wrap(failure.ErrConfiguration, stageName, "load font", "read "+path, err)
		}
		data = raw
		name = path
	}

	parsed, err := parseFont(data, path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrRender, stageName, "load font", "parse "+name, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, failure.Wrap(failure.ErrRender, stageName, "load font", "create face", err)
	}
	return face, nil
}

func parseFont(data []byte, path string) (*opentype.Font, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		if collection.NumFonts() == 0 {
			return nil, fmt.Errorf("font collection is empty")
		}
		return collection.Font(0)
	default:
		return opentype.Parse(data)
	}
}
