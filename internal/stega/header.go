package stega

// EncodeLength writes n across the two header pixels: the high 16 bits go to
// p0 and the low 16 bits to p1, each half as two bytes in (R,B) then (G,A).
func EncodeLength(n uint32, p0, p1 Pixel) {
	encodeHalf(uint16(n>>16), p0)
	encodeHalf(uint16(n), p1)
}

// DecodeLength is the inverse of EncodeLength.
func DecodeLength(p0, p1 Pixel) uint32 {
	var n uint32
	n |= uint32(decodeHalf(p0)) << 16
	n |= uint32(decodeHalf(p1))
	return n
}

func encodeHalf(v uint16, px Pixel) {
	embedPair(px, byte(v>>8), byte(v))
}

func decodeHalf(px Pixel) uint16 {
	hi, lo := extractPair(px)
	return uint16(hi)<<8 | uint16(lo)
}

// headerPixels returns pixels (0,0) and (1,0).
func headerPixels(r Raster) (Pixel, Pixel) {
	return r.At(0, 0), r.At(1, 0)
}
