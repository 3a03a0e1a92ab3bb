package processor

import (
	"bytes"
	"fmt"
	"image"
)

// validateImage reads only the header so oversized images are rejected before decoding.
func (p *PixelProcessor) validateImage(data []byte) (image.Config, error) {
	if len(data) == 0 {
		return image.Config{}, fmt.Errorf("empty image data")
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to decode image: %w", err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Config{}, fmt.Errorf("image has no pixels: %dx%d", cfg.Width, cfg.Height)
	}

	if p.maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > p.maxPixels {
		return image.Config{}, fmt.Errorf("image dimensions %dx%d exceed maximum of %d pixels",
			cfg.Width, cfg.Height, p.maxPixels)
	}

	return cfg, nil
}
