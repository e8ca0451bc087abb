package stega

import (
	"fmt"
	"math"
)

const (
	// HeaderPixels is the number of pixels reserved for the length header.
	HeaderPixels = 2
	// BytesPerPixel is the payload capacity of one pixel.
	BytesPerPixel = 2
)

// MaxCapacity returns the number of payload bytes a width x height raster can
// carry after reserving the header pixels (0,0) and (1,0).
func MaxCapacity(width, height int) (int, error) {
	if width < HeaderPixels || height < 1 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInsufficientRaster, width, height)
	}
	return width*height*BytesPerPixel - HeaderPixels*BytesPerPixel, nil
}

// Fits reports whether a payload of n bytes can be embedded.
func Fits(n, width, height int) bool {
	capacity, err := MaxCapacity(width, height)
	if err != nil {
		return false
	}
	return n >= 0 && n <= capacity && uint64(n) <= math.MaxUint32
}

// Enable returns nil if a payload of n bytes fits the raster.
func Enable(r Raster, n int) error {
	capacity, err := MaxCapacity(r.Width, r.Height)
	if err != nil {
		return err
	}
	if !Fits(n, r.Width, r.Height) {
		return fmt.Errorf("%w: capacity %d < payload length %d", ErrPayloadTooLarge, capacity, n)
	}
	return nil
}
