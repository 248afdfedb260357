package dpx

import (
	"image"
	"image/color"
)

// NRGBA64 copies the decoded frame into the standard library image model,
// preserving the full 16-bit sample depth.
func (im *Image) NRGBA64() *image.NRGBA64 {
	out := image.NewNRGBA64(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r, g, b, a := im.At(x, y)
			out.SetNRGBA64(x, y, color.NRGBA64{R: r, G: g, B: b, A: a})
		}
	}
	return out
}
