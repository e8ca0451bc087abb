package stega

import (
	"context"
	"fmt"
	"sync"
)

// PadByte fills the spare slot of the last pixel of an odd-length payload.
const PadByte byte = 0x00

// chunkPixels is how many pixels a worker handles between context checks.
const chunkPixels = 4096

// Pixels is a run of pixels in raster-scan order, 4 bytes each.
type Pixels []uint8

// PayloadPixels returns the pixels following the two header pixels.
// The returned slice aliases r.Pix.
func PayloadPixels(r Raster) Pixels {
	return Pixels(r.Pix[HeaderPixels*4:])
}

// Len returns the number of pixels.
func (p Pixels) Len() int {
	return len(p) / 4
}

func (p Pixels) at(i int) Pixel {
	return Pixel(p[i*4 : i*4+4 : i*4+4])
}

// pixelsFor returns the number of pixels needed for n payload bytes.
func pixelsFor(n int) int {
	return (n + BytesPerPixel - 1) / BytesPerPixel
}

// EncodePayload writes payload into pixels two bytes per pixel. An odd-length
// payload gets PadByte in the second slot of its last pixel. Pixels beyond the
// payload are not touched.
func EncodePayload(ctx context.Context, payload []byte, pixels Pixels, workers int) error {
	need := pixelsFor(len(payload))
	if need > pixels.Len() {
		return fmt.Errorf("%w: %d pixels needed, %d available", ErrPayloadTooLarge, need, pixels.Len())
	}
	last := len(payload) - 1
	return parallel(ctx, need, workers, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			second := PadByte
			if 2*k+1 <= last {
				second = payload[2*k+1]
			}
			embedPair(pixels.at(k), payload[2*k], second)
		}
	})
}

// DecodePayload reads exactly n bytes from pixels. When n is odd the second
// byte of the final pixel is dropped.
func DecodePayload(ctx context.Context, pixels Pixels, n int, workers int) ([]byte, error) {
	need := pixelsFor(n)
	if need > pixels.Len() {
		return nil, fmt.Errorf("%w: %d pixels needed, %d available", ErrTruncatedPayload, need, pixels.Len())
	}
	out := make([]byte, need*BytesPerPixel)
	err := parallel(ctx, need, workers, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			out[2*k], out[2*k+1] = extractPair(pixels.at(k))
		}
	})
	if err != nil {
		return nil, err
	}
	return out[:n:n], nil
}

// parallel splits [0, total) into contiguous ranges handled by up to workers
// goroutines. Each pixel maps to fixed payload offsets, so the split does not
// change the byte order.
func parallel(ctx context.Context, total, workers int, fn func(lo, hi int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if workers < 1 {
		workers = 1
	}
	if max := (total + chunkPixels - 1) / chunkPixels; workers > max {
		workers = max
	}
	if workers <= 1 {
		return run(ctx, 0, total, fn)
	}

	per := (total + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		go func(w int) {
			defer wg.Done()
			lo := min(w*per, total)
			hi := min(lo+per, total)
			errs[w] = run(ctx, lo, hi, fn)
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func run(ctx context.Context, lo, hi int, fn func(lo, hi int)) error {
	for start := lo; start < hi; start += chunkPixels {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(start, min(start+chunkPixels, hi))
	}
	return nil
}
