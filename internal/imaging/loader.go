package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

var (
	// ErrImageDecode is returned when an image file cannot be opened or decoded.
	ErrImageDecode = errors.New("image decode failed")

	// ErrImageEncode is returned when an image file cannot be created or encoded.
	ErrImageEncode = errors.New("image encode failed")
)

// Load reads and decodes the image at path and returns it as non-premultiplied
// 8-bit RGBA.
//
// EXIF orientation is ignored so that the output keeps the input's pixel
// layout. The file is closed before Load returns, on success and failure alike.
//
// # Errors
//
//   - Wraps ErrImageDecode if the file does not exist or cannot be read
//   - Wraps ErrImageDecode if the contents are not a decodable image
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(false))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	return imaging.Clone(img), nil
}

// Save encodes img as PNG and writes it to path, replacing any existing file.
//
// Parameters:
//   - path: Destination file. The parent folder must already exist. The name
//     is used as given, with no extension added or changed.
//   - img: The image to encode. *image.NRGBA is written without any alpha
//     premultiplication, so semi-transparent pixels keep their exact RGB.
//
// # Errors
//
//   - Wraps ErrImageEncode if the file cannot be created, e.g. the parent
//     folder is missing or path names a directory
//   - Wraps ErrImageEncode if PNG encoding or the write fails
func Save(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("%w: %w", ErrImageEncode, err)
	}
	return nil
}
