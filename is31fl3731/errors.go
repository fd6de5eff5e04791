package is31fl3731

import (
	"errors"
	"fmt"
)

var (
	// ErrBus matches any *BusError with errors.Is.
	ErrBus = errors.New("is31fl3731: bus error")
	// ErrInvalidFrame is returned for frame indices outside [0, MaxFrame].
	ErrInvalidFrame = errors.New("is31fl3731: invalid frame")
	// ErrInvalidBank is returned for banks that are neither a frame nor ConfigBank.
	ErrInvalidBank = errors.New("is31fl3731: invalid bank")
	// ErrRegisterOverflow is returned when a block would run past register 0xFF.
	ErrRegisterOverflow = errors.New("is31fl3731: block exceeds register space")
)

// BusError reports a failed transaction on the underlying connection.
type BusError struct {
	Op       string
	Register byte
	Err      error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("is31fl3731: %s at register 0x%02X: %v", e.Op, e.Register, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrBus.
func (e *BusError) Is(target error) bool {
	return target == ErrBus
}

// ValidateFrame returns ErrInvalidFrame if frame can not be displayed.
func ValidateFrame(frame int) error {
	if frame < 0 || frame > MaxFrame {
		return fmt.Errorf("%w: %d", ErrInvalidFrame, frame)
	}
	return nil
}

func validateBank(bank byte) error {
	if bank > MaxFrame && bank != ConfigBank {
		return fmt.Errorf("%w: 0x%02X", ErrInvalidBank, bank)
	}
	return nil
}
