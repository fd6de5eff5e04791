package ledshim

import (
	"fmt"

	"github.com/flavioheleno/ledshim/is31fl3731"
)

// Layout describes how a board wires its pixels to the IS31FL3731 matrix.
type Layout struct {
	// Map holds, per pixel, the red, green and blue offsets inside the
	// PWM page (relative to is31fl3731.ColorOffset).
	Map [][3]byte
	// Enable is written to the LED control region of every used frame and
	// declares which matrix cells are populated.
	Enable [is31fl3731.EnableLen]byte
}

// Width returns the number of pixels in the layout.
func (l *Layout) Width() int {
	return len(l.Map)
}

// Offsets returns the page offsets of the red, green and blue channels of
// pixel i.
func (l *Layout) Offsets(i int) (r, g, b byte, err error) {
	if i < 0 || i >= len(l.Map) {
		return 0, 0, 0, fmt.Errorf("%w: pixel %d of %d", ErrOutOfRange, i, len(l.Map))
	}
	o := l.Map[i]
	return o[0], o[1], o[2], nil
}

func (l *Layout) validate() error {
	if len(l.Map) == 0 {
		return fmt.Errorf("%w: empty pixel map", ErrOutOfRange)
	}
	for i, o := range l.Map {
		for _, v := range o {
			if int(v) >= is31fl3731.PageLen {
				return fmt.Errorf("%w: pixel %d offset %d", ErrOutOfRange, i, v)
			}
		}
	}
	return nil
}

// LEDShim is the layout of the Pimoroni LED SHIM: 28 RGB pixels in one row.
var LEDShim = Layout{
	Map: [][3]byte{
		{118, 69, 85},
		{117, 68, 101},
		{116, 84, 100},
		{115, 83, 99},
		{114, 82, 98},
		{113, 81, 97},
		{112, 80, 96},
		{134, 21, 37},
		{133, 20, 36},
		{132, 19, 35},
		{131, 18, 34},
		{130, 17, 50},
		{129, 33, 49},
		{128, 32, 48},

		{127, 47, 63},
		{121, 41, 57},
		{122, 25, 58},
		{123, 26, 42},
		{124, 27, 43},
		{125, 28, 44},
		{126, 29, 45},
		{15, 95, 111},
		{8, 89, 105},
		{9, 90, 106},
		{10, 91, 107},
		{11, 92, 108},
		{12, 76, 109},
		{13, 77, 93},
	},
	Enable: [is31fl3731.EnableLen]byte{
		0b00000000, 0b10111111,
		0b00111110, 0b00111110,
		0b00111111, 0b10111110,
		0b00000111, 0b10000110,
		0b00110000, 0b00110000,
		0b00111111, 0b10111110,
		0b00111111, 0b10111110,
		0b01111111, 0b11111110,
		0b01111111, 0b00000000,
	},
}
