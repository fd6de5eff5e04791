package ledshim

import "errors"

var (
	// ErrInvalidIndex is returned for pixel indices outside [0, width).
	ErrInvalidIndex = errors.New("ledshim: invalid pixel index")
	// ErrInvalidColor is returned for channel values that are not finite or
	// fall outside [0, 255] once truncated.
	ErrInvalidColor = errors.New("ledshim: invalid RGB value, must be 0 <= value <= 255")
	// ErrOutOfRange is returned when a layout lookup falls outside the table.
	ErrOutOfRange = errors.New("ledshim: layout index out of range")
	// ErrHalted is returned by operations on a device that was shut down.
	ErrHalted = errors.New("ledshim: halted")
)
