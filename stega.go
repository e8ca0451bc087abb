package stega

import (
	"context"
	"fmt"
	"image"

	"github.com/yyyoichi/stega_zero/internal/frame"
	"github.com/yyyoichi/stega_zero/internal/quality"
	"github.com/yyyoichi/stega_zero/internal/stega"
)

var (
	// ErrInsufficientRaster is returned for images narrower than 2 pixels or empty.
	ErrInsufficientRaster = stega.ErrInsufficientRaster
	// ErrPayloadTooLarge is returned when the payload does not fit the image.
	ErrPayloadTooLarge = stega.ErrPayloadTooLarge
	// ErrDeclaredLengthExceedsCapacity is returned when the length header of an
	// image cannot be right for its size, usually because it carries no payload.
	ErrDeclaredLengthExceedsCapacity = stega.ErrDeclaredLengthExceedsCapacity
	// ErrOddPayloadLength is returned by WithStrictEven for odd payloads.
	ErrOddPayloadLength = stega.ErrOddPayloadLength
	// ErrTruncatedPayload is returned when the image ends before the payload does.
	ErrTruncatedPayload = stega.ErrTruncatedPayload
	// ErrCorruptFrame is returned when a framing stage cannot decode the payload.
	ErrCorruptFrame = frame.ErrCorruptFrame
)

// Report describes the distortion between a cover and a stego image.
type Report = quality.Report

// Embed hides payload in src with the specified options.
// This is a convenience function that creates a Stega instance and calls its Embed method.
func Embed(ctx context.Context, src image.Image, payload []byte, opts ...Option) (*image.NRGBA, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Embed(ctx, src, payload)
}

// Extract recovers the payload hidden in src with the specified options.
// This is a convenience function that creates a Stega instance and calls its Extract method.
func Extract(ctx context.Context, src image.Image, opts ...Option) ([]byte, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Extract(ctx, src)
}

// Capacity returns the number of payload bytes an image of the given bounds can hold.
func Capacity(rect image.Rectangle, opts ...Option) (int, error) {
	s, err := New(opts...)
	if err != nil {
		return 0, err
	}
	return s.Capacity(rect)
}

// Measure compares a cover image with its stego version.
func Measure(cover, stego image.Image) (Report, error) {
	return quality.Compare(stega.NewRaster(cover), stega.NewRaster(stego))
}

type Stega struct {
	cfg    stega.Config
	stages frame.Pipeline
}

// New initializes a steganography codec.
// Embedding and extracting must use the same options.
func New(opts ...Option) (*Stega, error) {
	s := new(Stega)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Embed hides payload in the pixels of src.
//
// Process:
//  1. Converts the image to non-premultiplied 8-bit RGBA.
//  2. Applies the framing stages (compression, error correction) to the payload.
//  3. Checks the framed payload against the image capacity.
//  4. Writes the 32-bit length into the low nibbles of pixels (0,0) and (1,0).
//  5. Writes the payload two bytes per pixel in raster-scan order.
//
// src is not modified. Returns an error if the payload does not fit.
func (s *Stega) Embed(ctx context.Context, src image.Image, payload []byte) (*image.NRGBA, error) {
	return embed(ctx, stega.NewRaster(src), src.Bounds(), payload, s)
}

// Extract recovers the payload hidden in src.
//
// Returns ErrDeclaredLengthExceedsCapacity if the header of src is not
// plausible for its size.
func (s *Stega) Extract(ctx context.Context, src image.Image) ([]byte, error) {
	return extract(ctx, stega.NewRaster(src), s)
}

// Capacity returns the largest payload, in bytes, that fits in rect with the
// configured framing. Compression is not accounted for.
func (s *Stega) Capacity(rect image.Rectangle) (int, error) {
	raw, err := stega.MaxCapacity(rect.Dx(), rect.Dy())
	if err != nil {
		return 0, err
	}
	return s.stages.MaxInput(raw), nil
}

func (s *Stega) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.cfg.Workers < 1 {
		s.cfg.Workers = 1
	}
	return nil
}

func embed(ctx context.Context, r stega.Raster, bounds image.Rectangle, payload []byte, s *Stega) (*image.NRGBA, error) {
	cfg := s.cfg
	if len(s.stages) > 0 {
		// the framed length is not the caller's to choose
		if cfg.StrictEven && len(payload)%2 != 0 {
			return nil, fmt.Errorf("%w: %d bytes", ErrOddPayloadLength, len(payload))
		}
		cfg.StrictEven = false
	}
	framed, err := s.stages.Encode(payload)
	if err != nil {
		return nil, err
	}
	dst, err := stega.Embed(ctx, r, framed, cfg)
	if err != nil {
		return nil, err
	}
	return dst.Image(bounds), nil
}

func extract(ctx context.Context, r stega.Raster, s *Stega) ([]byte, error) {
	framed, err := stega.Extract(ctx, r, s.cfg)
	if err != nil {
		return nil, err
	}
	return s.stages.Decode(framed)
}

// Batch embeds many payloads into one cover image, converting it only once.
type Batch struct {
	original stega.Raster
	bounds   image.Rectangle
}

// NewBatch creates a new Batch instance and converts src to a raster.
func NewBatch(src image.Image) *Batch {
	return &Batch{
		original: stega.NewRaster(src),
		bounds:   src.Bounds(),
	}
}

// Embed hides payload in a fresh copy of the cached image.
func (b *Batch) Embed(ctx context.Context, payload []byte, opts ...Option) (*image.NRGBA, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return embed(ctx, b.original, b.bounds, payload, s)
}

// Extract recovers a payload from the cached image.
func (b *Batch) Extract(ctx context.Context, opts ...Option) ([]byte, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return extract(ctx, b.original, s)
}
