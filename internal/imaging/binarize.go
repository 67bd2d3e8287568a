package imaging

import (
	"image"
	"image/color"
	"image/draw"
)

// DefaultThreshold is the grayscale cutoff for binarization. Pixels above
// it become white, everything else black.
const DefaultThreshold uint8 = 170

// Grayscale converts any image to 8-bit grayscale using the standard
// luminance weights.
func Grayscale(src image.Image) *image.Gray {
	bounds := src.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, src, bounds.Min, draw.Src)
	return gray
}

// Binarize maps every pixel of a grayscale image to pure black or pure
// white around the given threshold. The comparison is strict: a pixel
// exactly at the threshold goes black.
func Binarize(src *image.Gray, threshold uint8) *image.Gray {
	bounds := src.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var v uint8
			if src.GrayAt(x, y).Y > threshold {
				v = 255
			}
			out.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return out
}

// PrepareForOCR runs the full preprocessing chain the OCR engine expects:
// grayscale conversion followed by binarization at the default threshold.
func PrepareForOCR(src image.Image) *image.Gray {
	return Binarize(Grayscale(src), DefaultThreshold)
}
