package stega

import "github.com/yyyoichi/stega_zero/internal/frame"

type Option func(*Stega) error

// WithWorkers spreads the payload pixels over n goroutines.
// Values below 1 are treated as 1. The byte layout does not depend on n.
func WithWorkers(n int) Option {
	return func(s *Stega) error {
		s.cfg.Workers = n
		return nil
	}
}

// WithStrictEven rejects odd-length payloads with ErrOddPayloadLength instead
// of padding the last pixel. The check applies to the payload given to Embed,
// before any framing stage.
func WithStrictEven() Option {
	return func(s *Stega) error {
		s.cfg.StrictEven = true
		return nil
	}
}

// WithZstd compresses the payload before embedding. level is 1-22.
func WithZstd(level int) Option {
	return func(s *Stega) error {
		z, err := frame.NewZstd(level)
		if err != nil {
			return err
		}
		s.stages = append(s.stages, z)
		return nil
	}
}

// WithGolay protects the payload with Golay(23,12) error correction.
// seed is the seed value for shuffling the encoded bits, so that a damaged
// region of the image spreads its errors over many codewords.
// Combined with WithZstd, the option given last is applied last on embed.
func WithGolay(seed int64) Option {
	return func(s *Stega) error {
		s.stages = append(s.stages, frame.NewGolay(seed))
		return nil
	}
}
