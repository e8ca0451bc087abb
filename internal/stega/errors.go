package stega

import "errors"

var (
	ErrInsufficientRaster            = errors.New("raster too small for the length header")
	ErrPayloadTooLarge               = errors.New("payload exceeds raster capacity")
	ErrDeclaredLengthExceedsCapacity = errors.New("declared payload length exceeds raster capacity")
	ErrOddPayloadLength              = errors.New("payload length is odd")
	ErrTruncatedPayload              = errors.New("raster ended before the declared payload length")
)
