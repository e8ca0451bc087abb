package bitconv

import "github.com/yyyoichi/bitstream-go"

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := 7; i >= 0; i-- {
			bits = append(bits, ((bb>>uint(i))&1) == 1)
		}
	}
	return bits
}

// BytesToWords packs b MSB-first into uint64 words and returns the bit count.
func BytesToWords(b []byte) ([]uint64, int) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range BytesToBools(b) {
		w.WriteBool(v)
	}
	return w.Data(), w.Bits()
}

// WordsToBytes unpacks the first bits bits of words into bytes, zero padding
// the final byte.
func WordsToBytes(words []uint64, bits int) []byte {
	if max := len(words) * 64; bits > max {
		bits = max
	}
	r := bitstream.NewBitReader(words, 0, 0)
	out := make([]byte, (bits+7)/8)
	for i := range bits {
		if bit, _ := r.ReadBitAt(i); bit {
			out[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return out
}
