package captions

import (
	"fmt"

	"github.com/dustin/go-humanize/english"

	"photostrip/internal/failure"
	"photostrip/internal/geometry"
	"photostrip/internal/intake"
	"photostrip/internal/textutil"
)

// Fits reports whether caption is within limit characters.
func Fits(caption string, limit float64) bool {
	return float64(textutil.RuneCount(caption)) <= limit
}

// ValidName reports whether name contains only letters, digits and
// underscores and is not empty.
func ValidName(name string) bool {
	return textutil.IsWordStem(name)
}

// CheckCaptions validates captions supplied without prompting.
func CheckCaptions(captions []string, limit float64) error {
	if len(captions) != geometry.PhotoCount {
		return failure.Wrap(failure.ErrValidation, stageName, "check",
			fmt.Sprintf("expected %d captions, got %d", geometry.PhotoCount, len(captions)), nil)
	}
	var long []string
	for i, caption := range captions {
		if !Fits(caption, limit) {
			long = append(long, fmt.Sprintf("%s (%d)", intake.Ordinals[i], textutil.RuneCount(caption)))
		}
	}
	if len(long) == 0 {
		return nil
	}
	return failure.Wrap(failure.ErrValidation, stageName, "check",
		fmt.Sprintf("the %s %s longer than %d characters",
			english.WordSeries(long, "and"),
			english.PluralWord(len(long), "caption is", "captions are"),
			int(limit)), nil)
}
