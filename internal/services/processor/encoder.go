package processor

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// encodePixel writes c as a 1x1 GIF with a single-entry palette so the
// color survives without quantization.
func (p *PixelProcessor) encodePixel(w io.Writer, c color.NRGBA) error {
	img := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{paletteColor(c)})
	img.SetColorIndex(0, 0, 0)
	return imaging.Encode(w, img, imaging.GIF)
}

// GIF has no partial alpha: anything not fully transparent is written opaque.
func paletteColor(c color.NRGBA) color.Color {
	if c.A == 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
