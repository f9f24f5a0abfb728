package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// ReplaceColor returns a copy of img in which every pixel whose RGB equals from
// has its RGB set to to.
//
// Parameters:
//   - img: The source image. It is converted to non-premultiplied RGBA and
//     never modified.
//   - from: The color to replace. Matching is exact on all three channels.
//   - to: The replacement color.
//
// Returns:
//   - *image.NRGBA: A new image with img's size, rebased so that its
//     top-left corner is (0, 0). Alpha is preserved for every pixel, and
//     pixels that do not match are copied unchanged.
//   - int: The number of pixels that were substituted. When from == to the
//     image is unchanged and the count still reports how many pixels matched.
func ReplaceColor(img image.Image, from, to RGBColor) (*image.NRGBA, int) {
	dst := imaging.Clone(img)

	replaced := 0
	bounds := dst.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+bounds.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			if row[i] != from.R || row[i+1] != from.G || row[i+2] != from.B {
				continue
			}
			// row[i+3] is alpha
			row[i], row[i+1], row[i+2] = to.R, to.G, to.B
			replaced++
		}
	}

	return dst, replaced
}
