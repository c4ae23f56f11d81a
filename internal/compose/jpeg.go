package compose

import (
	"image"
	"image/jpeg"
	"io"

	"github.com/gofrs/flock"

	"photostrip/internal/failure"
	"photostrip/internal/fileutil"
)

// WriteJPEG encodes img to path at the given quality and returns the file
// size. Concurrent writers to the same path are refused through an advisory
// lock on path + ".lock", which is left in place. Quality outside 1..100 falls back to
// jpeg.DefaultQuality.
func WriteJPEG(path string, img image.Image, quality int) (int64, error) {
	if quality < 1 || quality > 100 {
		quality = jpeg.DefaultQuality
	}

	lockPath := path + ".lock"
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return 0, failure.Wrap(failure.ErrIO, stageName, "lock output", lockPath, err)
	}
	if !ok {
		return 0, failure.Wrap(failure.ErrIO, stageName, "lock output",
			"another run is writing "+path, nil)
	}
	// The lock file is never removed so every writer locks the same inode.
	defer lock.Unlock()

	written, err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	})
	if err != nil {
		return 0, failure.Wrap(failure.ErrIO, stageName, "write jpeg", path, err)
	}
	return written, nil
}
