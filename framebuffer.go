package ledshim

import (
	"fmt"
	"math"
)

// Pixel is the logical state of one LED.
//
// Brightness scales the color at render time and is not clamped here.
type Pixel struct {
	R, G, B    uint8
	Brightness float64
}

var blank = Pixel{Brightness: 1.0}

// FrameBuffer holds a fixed number of pixels. It performs no bus I/O.
type FrameBuffer struct {
	pix []Pixel
}

// NewFrameBuffer returns a cleared buffer of width pixels.
func NewFrameBuffer(width int) *FrameBuffer {
	f := &FrameBuffer{pix: make([]Pixel, width)}
	f.Clear()
	return f
}

// Len returns the number of pixels.
func (f *FrameBuffer) Len() int {
	return len(f.pix)
}

// At returns the state of pixel i.
func (f *FrameBuffer) At(i int) (Pixel, error) {
	if err := f.checkIndex(i); err != nil {
		return Pixel{}, err
	}
	return f.pix[i], nil
}

// SetPixel replaces color and brightness of pixel i. Channel values are
// truncated toward zero. Nothing is modified when an argument is invalid.
func (f *FrameBuffer) SetPixel(i int, r, g, b, brightness float64) error {
	p, err := toPixel(r, g, b, brightness)
	if err != nil {
		return err
	}
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.pix[i] = p
	return nil
}

// SetAll sets every pixel to the same color and brightness, or none of them
// when the color is invalid.
func (f *FrameBuffer) SetAll(r, g, b, brightness float64) error {
	p, err := toPixel(r, g, b, brightness)
	if err != nil {
		return err
	}
	for i := range f.pix {
		f.pix[i] = p
	}
	return nil
}

// Clear turns every pixel off at full brightness.
func (f *FrameBuffer) Clear() {
	for i := range f.pix {
		f.pix[i] = blank
	}
}

func (f *FrameBuffer) checkIndex(i int) error {
	if i < 0 || i >= len(f.pix) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, i, len(f.pix))
	}
	return nil
}

func toPixel(r, g, b, brightness float64) (Pixel, error) {
	var c [3]uint8
	for i, v := range [3]float64{r, g, b} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Pixel{}, fmt.Errorf("%w: %v", ErrInvalidColor, v)
		}
		t := math.Trunc(v)
		if t < 0 || t > 255 {
			return Pixel{}, fmt.Errorf("%w: %v", ErrInvalidColor, v)
		}
		c[i] = uint8(t)
	}
	return Pixel{R: c[0], G: c[1], B: c[2], Brightness: brightness}, nil
}
