package processor

import (
	"bytes"
	"fmt"
	"image"

	"github.com/phambaophuc/pixel-color/internal/config"
	"github.com/phambaophuc/pixel-color/internal/models"
	"github.com/phambaophuc/pixel-color/pkg/utils"

	// imaging registers gif, jpeg, png, bmp and tiff; webp is added here.
	_ "golang.org/x/image/webp"
)

// PixelProcessor reduces an encoded image to a single-pixel GIF data URL.
type PixelProcessor struct {
	filterName string
	maxPixels  int64
}

func NewPixelProcessor(cfg config.PixelConfig) *PixelProcessor {
	return &PixelProcessor{
		filterName: cfg.Filter,
		maxPixels:  cfg.MaxPixels,
	}
}

func (p *PixelProcessor) Process(data []byte) (*models.PixelResult, error) {
	cfg, err := p.validateImage(data)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	pixel := p.resizeToPixel(img)

	buffer := &bytes.Buffer{}
	if err := p.encodePixel(buffer, pixel); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &models.PixelResult{
		DataURL:      utils.GIFDataURL(buffer.Bytes()),
		Color:        pixel,
		SourceWidth:  cfg.Width,
		SourceHeight: cfg.Height,
		SourceFormat: format,
		FetchedBytes: len(data),
	}, nil
}

// FilterName is the resample filter actually in use.
func (p *PixelProcessor) FilterName() string {
	if _, ok := resampleFilters[p.filterName]; ok {
		return p.filterName
	}
	return defaultFilter
}
