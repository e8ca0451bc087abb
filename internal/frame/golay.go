package frame

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"sort"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
	"github.com/yyyoichi/stega_zero/internal/bitconv"
)

// golayWordBits is the size of one Golay(23,12) codeword.
const golayWordBits = 23

// lengthPrefix is the size of the big-endian length stored ahead of the data.
const lengthPrefix = 4

var _ Stage = (*ShuffledGolay)(nil)

// ShuffledGolay protects the payload with Golay(23,12) and spreads the
// codeword bits over the frame with a seeded permutation.
type ShuffledGolay int64

func NewGolay(seed int64) ShuffledGolay {
	return ShuffledGolay(seed)
}

func (sg ShuffledGolay) Encode(data []byte) ([]byte, error) {
	framed := make([]byte, lengthPrefix+len(data))
	binary.BigEndian.PutUint32(framed, uint32(len(data)))
	copy(framed[lengthPrefix:], data)

	words, bits := bitconv.BytesToWords(framed)
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	if err := enc.Encode(words, bits); err != nil {
		return nil, fmt.Errorf("golay encode: %w", err)
	}
	encodedLen := enc.Bits()

	index := sg.generatePermutation(encodedLen)
	r := bitstream.NewBitReader(encoded, 0, 0)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range encodedLen {
		bit, _ := r.ReadBitAt(index[i])
		w.WriteBitAt(i, bit)
	}
	return bitconv.WordsToBytes(w.Data(), encodedLen), nil
}

func (sg ShuffledGolay) Decode(data []byte) ([]byte, error) {
	encodedLen := len(data) * 8 / golayWordBits * golayWordBits
	if encodedLen == 0 {
		return nil, fmt.Errorf("%w: %d bytes is shorter than one codeword", ErrCorruptFrame, len(data))
	}
	bits := bitconv.BytesToBools(data)[:encodedLen]

	// reverse shuffle: same permutation, inverse mapping
	index := sg.generatePermutation(encodedLen)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}
	out := bitconv.WordsToBytes(decoded, len(decoded)*64)
	if len(out) < lengthPrefix {
		return nil, fmt.Errorf("%w: missing length prefix", ErrCorruptFrame)
	}
	n := binary.BigEndian.Uint32(out)
	if uint64(n) > uint64(len(out)-lengthPrefix) {
		return nil, fmt.Errorf("%w: prefix declares %d bytes, frame holds %d", ErrCorruptFrame, n, len(out)-lengthPrefix)
	}
	return out[lengthPrefix : lengthPrefix+int(n)], nil
}

// EncodedLen returns the framed size in bytes for an n byte input.
func (sg ShuffledGolay) EncodedLen(n int) int {
	return (golay.EncodedBits((lengthPrefix+n)*8) + 7) / 8
}

func (sg ShuffledGolay) MaxInput(capacity int) int {
	// largest n with EncodedLen(n) <= capacity
	n := sort.Search(capacity+1, func(n int) bool {
		return sg.EncodedLen(n) > capacity
	})
	return max(n-1, 0)
}

func (sg ShuffledGolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	seed := int64(sg)
	rd := rand.New(rand.NewSource(seed))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
