package imagepkg

import (
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/youruser/menucard/internal/util"
	menuerrors "github.com/youruser/menucard/pkg/errors"
)

// Encode writes img to w in the given format. quality only affects JPEG.
func Encode(w io.Writer, img image.Image, format imaging.Format, quality int) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(quality)); err != nil {
		return menuerrors.NewEncodingError("", err)
	}
	return nil
}

// Save encodes img to path, picking the format from the file extension. The file
// is replaced atomically so a failed save never leaves a partial image behind.
func Save(img image.Image, path string, quality int) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return menuerrors.NewEncodingError(path, err)
	}
	err = util.WriteFileAtomic(path, func(w io.Writer) error {
		return imaging.Encode(w, img, format, imaging.JPEGQuality(quality))
	})
	if err != nil {
		return menuerrors.NewEncodingError(path, err)
	}
	return nil
}
