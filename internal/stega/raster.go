package stega

import (
	"image"

	"github.com/disintegration/imaging"
)

// Channel offsets inside a Pixel.
const (
	R = iota
	G
	B
	A
)

// Pixel is a 4-byte R,G,B,A window into Raster.Pix.
type Pixel []uint8

// Raster is a row-major, non-premultiplied 8-bit RGBA pixel buffer.
type Raster struct {
	Width, Height int
	Pix           []uint8
}

// NewRaster converts src into a Raster. Premultiplied sources are converted
// to straight alpha so that alpha nibbles survive container serialisation.
func NewRaster(src image.Image) Raster {
	bounds := src.Bounds()
	r := Raster{Width: bounds.Dx(), Height: bounds.Dy()}
	if nrgba, ok := src.(*image.NRGBA); ok {
		r.Pix = make([]uint8, r.Area()*4)
		rowLen := r.Width * 4
		for y := range r.Height {
			off := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(r.Pix[y*rowLen:(y+1)*rowLen], nrgba.Pix[off:off+rowLen])
		}
		return r
	}
	// Clone returns a fresh *image.NRGBA at origin with a tight stride.
	r.Pix = imaging.Clone(src).Pix
	return r
}

// Area returns the number of pixels in the raster.
func (r Raster) Area() int {
	return r.Width * r.Height
}

// Pixel returns the pixel at raster-scan index i.
func (r Raster) Pixel(i int) Pixel {
	return Pixel(r.Pix[i*4 : i*4+4 : i*4+4])
}

// At returns the pixel at (x, y).
func (r Raster) At(x, y int) Pixel {
	return r.Pixel(y*r.Width + x)
}

// Copy returns a deep copy of the raster.
func (r Raster) Copy() Raster {
	pix := make([]uint8, len(r.Pix))
	_ = copy(pix, r.Pix)
	r.Pix = pix
	return r
}

// Image wraps the raster as an *image.NRGBA placed at bounds.Min.
// The pixel buffer is shared, not copied.
func (r Raster) Image(bounds image.Rectangle) *image.NRGBA {
	rect := image.Rect(0, 0, r.Width, r.Height).Add(bounds.Min)
	return &image.NRGBA{
		Pix:    r.Pix,
		Stride: r.Width * 4,
		Rect:   rect,
	}
}

func (r Raster) valid() bool {
	return r.Width >= 0 && r.Height >= 0 && len(r.Pix) == r.Area()*4
}
