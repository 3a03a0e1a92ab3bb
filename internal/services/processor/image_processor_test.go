package processor

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"regexp"
	"strings"
	"testing"

	"github.com/phambaophuc/pixel-color/internal/config"
	"github.com/phambaophuc/pixel-color/pkg/utils"
)

var dataURLPattern = regexp.MustCompile(`^data:image/gif;base64,[A-Za-z0-9+/=]+$`)

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	if !dataURLPattern.MatchString(dataURL) {
		t.Fatalf("unexpected data URL: %q", dataURL)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, utils.GIFDataURLPrefix))
	if err != nil {
		t.Fatalf("base64: %v", err)
	}
	img, err := gif.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("gif decode: %v", err)
	}
	return img
}

func newProcessor(filter string) *PixelProcessor {
	return NewPixelProcessor(config.PixelConfig{Filter: filter, MaxPixels: 1_000_000})
}

func TestProcessSolidColors(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	var jpegBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, solidImage(16, 16, red), &jpeg.Options{Quality: 100}); err != nil {
		t.Fatalf("jpeg encode: %v", err)
	}

	paletted := image.NewPaletted(image.Rect(0, 0, 5, 3), color.Palette{red})
	var gifBuf bytes.Buffer
	if err := gif.Encode(&gifBuf, paletted, nil); err != nil {
		t.Fatalf("gif encode: %v", err)
	}

	tests := []struct {
		name   string
		data   []byte
		format string
		width  int
		height int
	}{
		{"png 1x1", encodePNG(t, solidImage(1, 1, red)), "png", 1, 1},
		{"png 64x32", encodePNG(t, solidImage(64, 32, red)), "png", 64, 32},
		{"jpeg", jpegBuf.Bytes(), "jpeg", 16, 16},
		{"gif", gifBuf.Bytes(), "gif", 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := newProcessor("lanczos").Process(tt.data)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if result.SourceFormat != tt.format {
				t.Errorf("format = %q, want %q", result.SourceFormat, tt.format)
			}
			if result.SourceWidth != tt.width || result.SourceHeight != tt.height {
				t.Errorf("size = %dx%d", result.SourceWidth, result.SourceHeight)
			}

			img := decodeDataURL(t, result.DataURL)
			if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
				t.Fatalf("decoded bounds = %v, want 1x1", b)
			}
			r, g, b, a := img.At(0, 0).RGBA()
			if r>>8 < 250 || g>>8 > 5 || b>>8 > 5 || a>>8 != 255 {
				t.Errorf("pixel = %d,%d,%d,%d, want red", r>>8, g>>8, b>>8, a>>8)
			}
		})
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	data := encodePNG(t, img)

	p := newProcessor("lanczos")
	first, err := p.Process(data)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	second, err := p.Process(data)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if first.DataURL != second.DataURL {
		t.Errorf("results differ:\n%s\n%s", first.DataURL, second.DataURL)
	}
}

func TestProcessAveragesWithBoxFilter(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{A: 255})
	img.Set(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	result, err := newProcessor("box").Process(encodePNG(t, img))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if c := result.Color; c.R < 120 || c.R > 136 || c.R != c.G || c.G != c.B {
		t.Errorf("color = %+v, want mid gray", c)
	}
	if !strings.HasPrefix(result.Hex(), "#") || len(result.Hex()) != 9 {
		t.Errorf("hex = %q", result.Hex())
	}
}

func TestProcessTransparentPixel(t *testing.T) {
	result, err := newProcessor("lanczos").Process(encodePNG(t, solidImage(4, 4, color.NRGBA{})))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img := decodeDataURL(t, result.DataURL)
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("alpha = %d, want transparent", a)
	}
}

func TestProcessRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr string
	}{
		{"empty", nil, "empty image data"},
		{"html", []byte("<html><body>not an image</body></html>"), "unknown format"},
		{"too many pixels", encodePNG(t, solidImage(2000, 1000, color.White)), "exceed maximum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newProcessor("lanczos").Process(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestFilterName(t *testing.T) {
	tests := []struct {
		configured string
		want       string
	}{
		{"box", "box"},
		{"nearest", "nearest"},
		{"bicubic-ish", "lanczos"},
		{"", "lanczos"},
	}

	for _, tt := range tests {
		if got := newProcessor(tt.configured).FilterName(); got != tt.want {
			t.Errorf("FilterName(%q) = %q, want %q", tt.configured, got, tt.want)
		}
	}
}
