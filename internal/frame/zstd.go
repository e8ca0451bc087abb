package frame

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// maxDecodedSize bounds the decompressed payload.
const maxDecodedSize = 64 << 20

var _ Stage = (*Zstd)(nil)

// Zstd compresses the payload with zstandard.
type Zstd struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstd returns a Zstd stage. level follows the zstd command line scale 1-22.
func NewZstd(level int) (*Zstd, error) {
	return newZstd(level, maxDecodedSize)
}

func newZstd(level int, maxDecoded uint64) (*Zstd, error) {
	if level < 1 || level > 22 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
	)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(maxDecoded),
	)
	if err != nil {
		return nil, err
	}
	return &Zstd{enc: enc, dec: dec}, nil
}

func (z *Zstd) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	return z.enc.EncodeAll(data, nil), nil
}

func (z *Zstd) Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	out, err := z.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
	}
	return out, nil
}

// MaxInput returns capacity unchanged; the compressed size depends on the data.
func (z *Zstd) MaxInput(capacity int) int {
	return capacity
}
