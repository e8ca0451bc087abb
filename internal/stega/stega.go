package stega

import (
	"context"
	"fmt"
)

// Config holds the core codec settings.
type Config struct {
	// Workers is the number of goroutines used for the payload area.
	Workers int
	// StrictEven rejects odd-length payloads instead of padding them.
	StrictEven bool
}

// Embed writes the length header and payload into a copy of src.
// src is never modified and no raster is returned on failure.
func Embed(ctx context.Context, src Raster, payload []byte, cfg Config) (Raster, error) {
	if !src.valid() {
		return Raster{}, fmt.Errorf("%w: pixel buffer does not match %dx%d", ErrInsufficientRaster, src.Width, src.Height)
	}
	if err := Enable(src, len(payload)); err != nil {
		return Raster{}, err
	}
	if cfg.StrictEven && len(payload)%2 != 0 {
		return Raster{}, fmt.Errorf("%w: %d", ErrOddPayloadLength, len(payload))
	}

	dst := src.Copy()
	p0, p1 := headerPixels(dst)
	EncodeLength(uint32(len(payload)), p0, p1)
	if err := EncodePayload(ctx, payload, PayloadPixels(dst), cfg.Workers); err != nil {
		return Raster{}, err
	}
	return dst, nil
}

// Extract reads the length header of src and returns exactly that many bytes.
func Extract(ctx context.Context, src Raster, cfg Config) ([]byte, error) {
	if !src.valid() {
		return nil, fmt.Errorf("%w: pixel buffer does not match %dx%d", ErrInsufficientRaster, src.Width, src.Height)
	}
	capacity, err := MaxCapacity(src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	n := DecodeLength(headerPixels(src))
	if uint64(n) > uint64(capacity) {
		return nil, fmt.Errorf("%w: header declares %d, capacity %d", ErrDeclaredLengthExceedsCapacity, n, capacity)
	}
	return DecodePayload(ctx, PayloadPixels(src), int(n), cfg.Workers)
}
