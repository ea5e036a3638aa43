package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"

	xdraw "golang.org/x/image/draw"
)

var (
	// ErrDecode is returned when the input bytes are not a decodable image.
	ErrDecode = errors.New("images: undecodable input")

	// ErrSurfaceUnavailable is returned when the target raster surface
	// cannot be allocated, e.g. the computed dimensions are degenerate.
	ErrSurfaceUnavailable = errors.New("images: render surface unavailable")
)

// Pipeline converts user-supplied raster images into bounded, compressed
// inline data URIs suitable for storing directly in a document field.
//
// The resize policy is single-axis: sources wider than MaxWidth are scaled
// down so that width == MaxWidth with height following proportionally.
// Sources within bounds keep their dimensions. There is no upscaling and
// no cropping.
type Pipeline struct {
	maxWidth int
	quality  float64
}

func NewPipeline(maxWidth int, quality float64) (*Pipeline, error) {
	if maxWidth <= 0 {
		return nil, fmt.Errorf("max width must be positive, got %d", maxWidth)
	}
	if quality <= 0 || quality > 1 {
		return nil, fmt.Errorf("quality must be in (0, 1], got %g", quality)
	}
	return &Pipeline{maxWidth: maxWidth, quality: quality}, nil
}

// Ingest decodes data, downsizes it to the pipeline bounds and re-encodes
// it as a JPEG data URI. On failure no output string is produced.
func (p *Pipeline) Ingest(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tw, th := targetSize(w, h, p.maxWidth)
	if tw <= 0 || th <= 0 {
		return "", fmt.Errorf("%w: %dx%d target for %dx%d source", ErrSurfaceUnavailable, tw, th, w, h)
	}

	out := src
	if tw != w || th != h {
		surface := image.NewRGBA(image.Rect(0, 0, tw, th))
		xdraw.CatmullRom.Scale(surface, surface.Bounds(), src, bounds, xdraw.Src, nil)
		out = surface
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: int(math.Round(p.quality * 100))}
	if err := jpeg.Encode(&buf, out, opts); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// targetSize applies the single-axis constraint: scale down only when the
// source width exceeds max, preserving aspect ratio exactly.
func targetSize(w, h, max int) (int, int) {
	if w <= max {
		return w, h
	}
	ratio := float64(max) / float64(w)
	return max, int(math.Round(float64(h) * ratio))
}
