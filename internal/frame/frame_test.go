package frame

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/golay"
)

func TestShuffledGolay(t *testing.T) {
	var sg ShuffledGolay = 12345

	t.Run("encode length", func(t *testing.T) {
		for n := range 64 {
			encoded, err := sg.Encode(make([]byte, n))
			require.NoError(t, err)
			assert.Equal(t, sg.EncodedLen(n), len(encoded), "n=%d", n)
		}
	})

	t.Run("whole codewords recovered", func(t *testing.T) {
		for n := range 64 {
			encoded, err := sg.Encode(make([]byte, n))
			require.NoError(t, err)
			// 23-bit codewords, padded to bytes with fewer than 8 bits
			assert.Equal(t, golay.EncodedBits((4+n)*8), len(encoded)*8/golayWordBits*golayWordBits, "n=%d", n)
		}
		for _, data := range [][]byte{[]byte("hi"), []byte("hey"), []byte("hello, world")} {
			encoded, err := sg.Encode(data)
			require.NoError(t, err)
			decoded, err := sg.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		}
	})

	t.Run("encode/decode", func(t *testing.T) {
		for _, data := range [][]byte{
			{},
			[]byte("a"),
			[]byte("TEST_MARK"),
			[]byte("こんにちはHello"),
			{0x12, 0x34, 0x56, 0x78, 0x90, 0xab, 0xcd, 0xef},
		} {
			encoded, err := sg.Encode(data)
			require.NoError(t, err)
			decoded, err := sg.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, data, decoded)
		}
	})

	t.Run("corrects flipped bits", func(t *testing.T) {
		data := []byte("hidden in the low nibbles")
		encoded, err := sg.Encode(data)
		require.NoError(t, err)
		damaged := bytes.Clone(encoded)
		// three flipped bits never exceed the correction radius of one codeword
		damaged[0] ^= 0x80
		damaged[len(damaged)/2] ^= 0x10
		damaged[len(damaged)-1] ^= 0x01
		decoded, err := sg.Decode(damaged)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	})

	t.Run("seed matters", func(t *testing.T) {
		data := []byte("0123456789")
		a, err := NewGolay(1).Encode(data)
		require.NoError(t, err)
		b, err := NewGolay(2).Encode(data)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("short frame", func(t *testing.T) {
		_, err := sg.Decode([]byte{0x01, 0x02})
		assert.ErrorIs(t, err, ErrCorruptFrame)
	})

	t.Run("max input", func(t *testing.T) {
		for _, capacity := range []int{0, 10, 24, 100, 196, 4096} {
			n := sg.MaxInput(capacity)
			if sg.EncodedLen(0) > capacity {
				assert.Zero(t, n)
				continue
			}
			assert.LessOrEqual(t, sg.EncodedLen(n), capacity)
			assert.Greater(t, sg.EncodedLen(n+1), capacity)
		}
	})
}

func TestZstd(t *testing.T) {
	z, err := NewZstd(3)
	require.NoError(t, err)

	rd := rand.New(rand.NewSource(7))
	random := make([]byte, 512)
	_, _ = rd.Read(random)

	for _, data := range [][]byte{
		{},
		[]byte("a"),
		bytes.Repeat([]byte("nibble "), 200),
		random,
	} {
		encoded, err := z.Encode(data)
		require.NoError(t, err)
		decoded, err := z.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	}

	t.Run("compresses", func(t *testing.T) {
		data := bytes.Repeat([]byte("nibble "), 200)
		encoded, err := z.Encode(data)
		require.NoError(t, err)
		assert.Less(t, len(encoded), len(data))
	})

	t.Run("corrupt", func(t *testing.T) {
		_, err := z.Decode([]byte("definitely not zstd"))
		assert.ErrorIs(t, err, ErrCorruptFrame)
	})

	t.Run("decoded size bound", func(t *testing.T) {
		small, err := newZstd(3, 1024)
		require.NoError(t, err)
		encoded, err := small.Encode(make([]byte, 4096))
		require.NoError(t, err)
		_, err = small.Decode(encoded)
		assert.ErrorIs(t, err, ErrCorruptFrame)

		encoded, err = small.Encode(make([]byte, 512))
		require.NoError(t, err)
		decoded, err := small.Decode(encoded)
		require.NoError(t, err)
		assert.Len(t, decoded, 512)
	})

	t.Run("level", func(t *testing.T) {
		_, err := NewZstd(0)
		assert.ErrorIs(t, err, ErrInvalidLevel)
		_, err = NewZstd(23)
		assert.ErrorIs(t, err, ErrInvalidLevel)
	})
}

func TestPipeline(t *testing.T) {
	z, err := NewZstd(1)
	require.NoError(t, err)
	p := Pipeline{z, NewGolay(99)}

	data := bytes.Repeat([]byte("abc"), 100)
	encoded, err := p.Encode(data)
	require.NoError(t, err)
	decoded, err := p.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	assert.Equal(t, NewGolay(99).MaxInput(300), p.MaxInput(300))
	assert.Equal(t, 300, Pipeline{}.MaxInput(300))

	out, err := Pipeline(nil).Encode(data)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
