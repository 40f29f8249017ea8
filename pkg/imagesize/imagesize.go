// Package imagesize reads the pixel dimensions and resolution of embedded
// images without decoding their pixel data.
//
// PNG, JPEG and GIF are handled by the standard decoders; BMP, TIFF and WebP
// by golang.org/x/image. Vector formats (EMF, WMF, PICT) are not supported
// and fail with errors.ErrCodeImageDecode.
//
// Results are cached by payload hash, so a picture embedded many times is
// only parsed once per cache.
package imagesize

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/sheetanchor/pkg/cache"
	"github.com/matzehuels/sheetanchor/pkg/errors"
	"github.com/matzehuels/sheetanchor/pkg/observability"
	"github.com/matzehuels/sheetanchor/pkg/units"
)

// cacheKeyType labels cache events emitted by this package.
const cacheKeyType = "imagesize"

// Info describes an image header.
type Info struct {
	Format string  `json:"format"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	DPIX   float64 `json:"dpi_x,omitempty"` // 0 when the image records no resolution
	DPIY   float64 `json:"dpi_y,omitempty"`
}

// Size returns the image size in pixels at resolution ppi. Images that
// record their own resolution are rescaled so that they keep their physical
// size; others keep their native pixel count.
func (i Info) Size(ppi float64) Size {
	return Size{
		Width:  units.ScaleToResolution(float64(i.Width), i.DPIX, ppi),
		Height: units.ScaleToResolution(float64(i.Height), i.DPIY, ppi),
	}
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// Scale multiplies both dimensions by f.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Decoder reads image headers, consulting a cache first.
// It is safe for concurrent use when its cache is.
type Decoder struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewDecoder creates a decoder. A nil cache disables caching; a nil logger
// means log.Default().
func NewDecoder(c cache.Cache, logger *log.Logger) *Decoder {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Decoder{Cache: c, Logger: logger}
}

// Decode reads the whole payload from r and decodes its header.
func (d *Decoder) Decode(ctx context.Context, r io.Reader) (Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Info{}, errors.Wrap(errors.ErrCodeImageDecode, err, "read image payload")
	}
	return d.DecodeBytes(ctx, data)
}

// DecodeBytes decodes the header of an in-memory payload.
func (d *Decoder) DecodeBytes(ctx context.Context, data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, errors.New(errors.ErrCodeImageDecode, "empty image payload")
	}

	key := cache.ImageKey(data)
	if info, ok := d.cached(ctx, key); ok {
		return info, nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, errors.Wrap(errors.ErrCodeImageDecode, err, "decode image header")
	}

	info := Info{Format: format, Width: cfg.Width, Height: cfg.Height}
	info.DPIX, info.DPIY = density(format, data)

	if encoded, err := json.Marshal(info); err == nil {
		if err := d.Cache.Set(ctx, key, encoded, 0); err != nil {
			d.Logger.Debug("image size not cached", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(encoded))
		}
	}
	return info, nil
}

// DecodeOrZero is the best-effort form of Decode: an unreadable payload is
// logged and reported as a zero-sized image instead of an error.
func (d *Decoder) DecodeOrZero(ctx context.Context, r io.Reader) Info {
	info, err := d.Decode(ctx, r)
	if err != nil {
		d.Logger.Warn("cannot determine image size, using zero size", "err", err)
		observability.Resize().OnDecodeFailure(ctx, err)
		return Info{}
	}
	return info
}

func (d *Decoder) cached(ctx context.Context, key string) (Info, bool) {
	data, hit, err := d.Cache.Get(ctx, key)
	if err != nil {
		d.Logger.Debug("image size cache read failed", "err", err)
		return Info{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return Info{}, false
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		_ = d.Cache.Delete(ctx, key)
		return Info{}, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return info, true
}
