package intake

import (
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/dustin/go-humanize/english"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"photostrip/internal/failure"
	"photostrip/internal/geometry"
)

const stageName = "intake"

// Validate checks that paths names four readable images that each meet the
// minimum area. The returned photos keep the input paths unchanged and in
// order.
func Validate(paths []string) ([]Photo, error) {
	if len(paths) != geometry.PhotoCount {
		return nil, failure.Wrap(failure.ErrValidation, stageName, "validate",
			fmt.Sprintf("expected %d photos, got %d", geometry.PhotoCount, len(paths)), nil)
	}

	photos := make([]Photo, len(paths))
	var missing []string
	for i, path := range paths {
		photos[i] = Photo{Path: path, Index: i, Ordinal: Ordinals[i]}
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			missing = append(missing, Ordinals[i])
			continue
		}
		photos[i].Bytes = info.Size()
	}
	if len(missing) > 0 {
		return nil, failure.Wrap(failure.ErrNotFound, stageName, "validate", notFoundMessage(missing), nil)
	}

	var small []string
	for i := range photos {
		if err := readHeader(&photos[i]); err != nil {
			return nil, err
		}
		if !geometry.MeetsMinArea(photos[i].Width, photos[i].Height) {
			small = append(small, photos[i].Ordinal)
		}
	}
	if len(small) > 0 {
		return nil, failure.Wrap(failure.ErrValidation, stageName, "validate", tooSmallMessage(small), nil)
	}
	return photos, nil
}

func readHeader(p *Photo) error {
	f, err := os.Open(p.Path)
	if err != nil {
		return failure.Wrap(failure.ErrIO, stageName, "open", p.Ordinal+" photo", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return failure.Wrap(failure.ErrValidation, stageName, "decode header",
			fmt.Sprintf("the %s photo is not a supported image", p.Ordinal), err)
	}
	p.Width = cfg.Width
	p.Height = cfg.Height
	p.Format = strings.ToLower(format)
	return nil
}

// notFoundMessage reads "the first and third photos were not found".
func notFoundMessage(ordinals []string) string {
	n := len(ordinals)
	return fmt.Sprintf("the %s %s %s not found",
		english.WordSeries(ordinals, "and"),
		english.PluralWord(n, "photo", ""),
		english.PluralWord(n, "was", "were"))
}

func tooSmallMessage(ordinals []string) string {
	return fmt.Sprintf("image area must be at least %d pixels, but the %s %s did not meet it",
		geometry.MinArea,
		english.WordSeries(ordinals, "and"),
		english.PluralWord(len(ordinals), "photo", ""))
}
