package stega

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxCapacity(t *testing.T) {
	test := []struct {
		width, height int
		exp           int
		err           error
	}{
		{2, 1, 0, nil},
		{3, 1, 2, nil},
		{2, 2, 4, nil},
		{10, 10, 196, nil},
		{1920, 1080, 1920*1080*2 - 4, nil},
		{1, 1, 0, ErrInsufficientRaster},
		{1, 5, 0, ErrInsufficientRaster},
		{0, 0, 0, ErrInsufficientRaster},
		{5, 0, 0, ErrInsufficientRaster},
	}
	for _, tt := range test {
		got, err := MaxCapacity(tt.width, tt.height)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "%dx%d", tt.width, tt.height)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.exp, got, "%dx%d", tt.width, tt.height)
		assert.Equal(t, tt.width*tt.height*2-4, got)
	}
}

func TestFits(t *testing.T) {
	assert.True(t, Fits(0, 2, 1))
	assert.False(t, Fits(1, 2, 1))
	assert.True(t, Fits(196, 10, 10))
	assert.False(t, Fits(197, 10, 10))
	assert.False(t, Fits(-1, 10, 10))
	assert.False(t, Fits(0, 1, 1))
}

func TestEnable(t *testing.T) {
	r := Raster{Width: 10, Height: 10}
	assert.NoError(t, Enable(r, 196))
	assert.ErrorIs(t, Enable(r, 197), ErrPayloadTooLarge)
	assert.ErrorIs(t, Enable(Raster{Width: 1, Height: 1}, 0), ErrInsufficientRaster)
}
