package stega

const (
	highNibble uint8 = 0xF0
	lowNibble  uint8 = 0x0F
)

// EmbedByte stores the high nibble of v in the low nibble of *a and the low
// nibble of v in the low nibble of *b. The high nibbles of *a and *b are kept.
func EmbedByte(v byte, a, b *uint8) {
	*a = *a&highNibble | v>>4
	*b = *b&highNibble | v&lowNibble
}

// ExtractByte is the inverse of EmbedByte.
func ExtractByte(a, b uint8) byte {
	return (a&lowNibble)<<4 | b&lowNibble
}

// embedPair writes two bytes into one pixel: first into (R,B), second into (G,A).
func embedPair(px Pixel, first, second byte) {
	EmbedByte(first, &px[R], &px[B])
	EmbedByte(second, &px[G], &px[A])
}

func extractPair(px Pixel) (first, second byte) {
	return ExtractByte(px[R], px[B]), ExtractByte(px[G], px[A])
}
