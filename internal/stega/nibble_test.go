package stega

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNibble(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		priors := []uint8{0x00, 0x0F, 0xF0, 0xFF, 0xA5, 0x5A}
		for v := range 256 {
			for _, pa := range priors {
				for _, pb := range priors {
					a, b := pa, pb
					EmbedByte(byte(v), &a, &b)
					assert.Equal(t, byte(v), ExtractByte(a, b))
					assert.Equal(t, pa&0xF0, a&0xF0, "high nibble of a")
					assert.Equal(t, pb&0xF0, b&0xF0, "high nibble of b")
				}
			}
		}
	})
	t.Run("layout", func(t *testing.T) {
		a, b := uint8(0b1010_1111), uint8(0b0101_0000)
		EmbedByte(0b0110_0001, &a, &b)
		assert.Equal(t, uint8(0b1010_0110), a)
		assert.Equal(t, uint8(0b0101_0001), b)
	})
	t.Run("pair", func(t *testing.T) {
		px := Pixel{0x12, 0x34, 0x56, 0x78}
		embedPair(px, 'a', 'r')
		assert.Equal(t, Pixel{0x16, 0x37, 0x51, 0x72}, px)
		first, second := extractPair(px)
		assert.Equal(t, byte('a'), first)
		assert.Equal(t, byte('r'), second)
	})
}
