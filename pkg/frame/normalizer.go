// Package frame turns transport-encoded still images into bounded, opaque
// rasters that can be handed to a model gateway.
package frame

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxDimension = 1280
	DefaultQuality      = 85
)

var ErrDecode = errors.New("invalid image data")

// Image is a decoded frame. Pixels are always fully opaque and the longer
// side never exceeds the bound it was normalized with.
type Image struct {
	RGBA   *image.RGBA
	Format string
}

func (i *Image) Width() int  { return i.RGBA.Bounds().Dx() }
func (i *Image) Height() int { return i.RGBA.Bounds().Dy() }

// JPEG encodes the frame for upload. Quality outside 1..100 uses the default.
func (i *Image) JPEG(quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, i.RGBA, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

type Normalizer struct {
	maxDimension int
	quality      int
}

func NewNormalizer(maxDimension, quality int) *Normalizer {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	return &Normalizer{maxDimension: maxDimension, quality: quality}
}

func (n *Normalizer) MaxDimension() int { return n.maxDimension }
func (n *Normalizer) Quality() int      { return n.quality }

func (n *Normalizer) Normalize(encoded string) (*Image, error) {
	return Normalize(encoded, n.maxDimension)
}

func (n *Normalizer) NormalizeBytes(raw []byte) (*Image, error) {
	return NormalizeBytes(raw, n.maxDimension)
}

// Normalize decodes encoded (optionally carrying a "data:...;base64," style
// prefix), flattens it to opaque RGB and scales it down so that neither side
// exceeds maxDimension. Failures wrap ErrDecode.
func Normalize(encoded string, maxDimension int) (*Image, error) {
	raw, err := decodePayload(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return NormalizeBytes(raw, maxDimension)
}

// NormalizeBytes is Normalize for an already decoded payload.
func NormalizeBytes(raw []byte, maxDimension int) (*Image, error) {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	return &Image{
		RGBA:   Resize(flatten(src), maxDimension),
		Format: format,
	}, nil
}

func decodePayload(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ","); idx >= 0 {
		encoded = encoded[idx+1:]
	}
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, errors.New("empty payload")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err == nil {
		return raw, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(encoded); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

// flatten composites src over white so alpha and palette sources end up as
// opaque color.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// Resize scales img down with Catmull-Rom so its longer side equals
// maxDimension. Images already within the bound are returned unchanged.
func Resize(img *image.RGBA, maxDimension int) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	nw, nh := ScaledSize(w, h, maxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ScaledSize returns the target dimensions for a w×h image bounded by
// maxDimension while keeping the aspect ratio.
func ScaledSize(w, h, maxDimension int) (int, int) {
	if w <= maxDimension && h <= maxDimension {
		return w, h
	}
	if w >= h {
		return maxDimension, scaleSide(h, w, maxDimension)
	}
	return scaleSide(w, h, maxDimension), maxDimension
}

func scaleSide(short, long, maxDimension int) int {
	v := int(math.Round(float64(short) * float64(maxDimension) / float64(long)))
	if v < 1 {
		return 1
	}
	return v
}
