package ledshim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrameBufferIsClear(t *testing.T) {
	f := NewFrameBuffer(28)
	require.Equal(t, 28, f.Len())
	for i := 0; i < f.Len(); i++ {
		p, err := f.At(i)
		require.NoError(t, err)
		assert.Equal(t, Pixel{Brightness: 1.0}, p)
	}
}

func TestSetPixelTruncates(t *testing.T) {
	f := NewFrameBuffer(28)
	for i := 0; i < f.Len(); i++ {
		require.NoError(t, f.SetPixel(i, 10.9, 254.999, 0.5, 0.25))
		p, err := f.At(i)
		require.NoError(t, err)
		assert.Equal(t, Pixel{R: 10, G: 254, B: 0, Brightness: 0.25}, p)
	}
}

func TestSetPixelInvalid(t *testing.T) {
	tests := []struct {
		name    string
		i       int
		r, g, b float64
		want    error
	}{
		{"red above range", 0, 256, 0, 0, ErrInvalidColor},
		{"red below range", 0, -1, 0, 0, ErrInvalidColor},
		{"green NaN", 0, 0, math.NaN(), 0, ErrInvalidColor},
		{"blue infinite", 0, 0, 0, math.Inf(1), ErrInvalidColor},
		{"index equals width", 28, 0, 0, 0, ErrInvalidIndex},
		{"negative index", -1, 0, 0, 0, ErrInvalidIndex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrameBuffer(28)
			err := f.SetPixel(tt.i, tt.r, tt.g, tt.b, 1.0)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, NewFrameBuffer(28), f, "buffer must be untouched")
		})
	}
}

func TestSetPixelEdgeValues(t *testing.T) {
	f := NewFrameBuffer(3)
	assert.NoError(t, f.SetPixel(0, 255.9, 0, 0, 1))
	assert.NoError(t, f.SetPixel(1, -0.5, 0, 0, 1))
	p, _ := f.At(0)
	assert.Equal(t, uint8(255), p.R)
	p, _ = f.At(1)
	assert.Equal(t, uint8(0), p.R)
}

func TestSetAllIsAtomic(t *testing.T) {
	f := NewFrameBuffer(28)
	require.NoError(t, f.SetAll(1, 2, 3, 0.5))
	for i := 0; i < f.Len(); i++ {
		p, _ := f.At(i)
		assert.Equal(t, Pixel{R: 1, G: 2, B: 3, Brightness: 0.5}, p)
	}

	before := NewFrameBuffer(28)
	require.NoError(t, before.SetAll(1, 2, 3, 0.5))
	assert.ErrorIs(t, f.SetAll(1, 300, 3, 1), ErrInvalidColor)
	assert.Equal(t, before, f)
}

func TestClear(t *testing.T) {
	f := NewFrameBuffer(28)
	require.NoError(t, f.SetAll(255, 255, 255, 0.1))
	f.Clear()
	assert.Equal(t, NewFrameBuffer(28), f)
}

func TestAtOutOfRange(t *testing.T) {
	f := NewFrameBuffer(2)
	_, err := f.At(2)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
