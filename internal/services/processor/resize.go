package processor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const defaultFilter = "lanczos"

var resampleFilters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"catmullrom": imaging.CatmullRom,
	"nearest":    imaging.NearestNeighbor,
}

func (p *PixelProcessor) resizeToPixel(img image.Image) color.NRGBA {
	resized := imaging.Resize(img, 1, 1, resampleFilters[p.FilterName()])
	return resized.NRGBAAt(0, 0)
}
