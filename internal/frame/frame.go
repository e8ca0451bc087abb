// Package frame transforms payload bytes before they are embedded and after
// they are extracted.
package frame

import "errors"

var (
	ErrCorruptFrame = errors.New("corrupt payload frame")
	ErrInvalidLevel = errors.New("invalid compression level")
)

// Stage is one reversible payload transform.
type Stage interface {
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
	// MaxInput returns the largest input length whose encoding is guaranteed
	// to fit in capacity bytes.
	MaxInput(capacity int) int
}

// Pipeline applies stages in order on encode and in reverse on decode.
type Pipeline []Stage

func (p Pipeline) Encode(data []byte) ([]byte, error) {
	var err error
	for _, s := range p {
		if data, err = s.Encode(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (p Pipeline) Decode(data []byte) ([]byte, error) {
	var err error
	for i := len(p) - 1; i >= 0; i-- {
		if data, err = p[i].Decode(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func (p Pipeline) MaxInput(capacity int) int {
	for i := len(p) - 1; i >= 0; i-- {
		capacity = p[i].MaxInput(capacity)
	}
	return capacity
}
