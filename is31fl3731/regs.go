package is31fl3731

import (
	"fmt"

	"periph.io/x/conn/v3"
)

// Regs issues banked register writes on a connection to the chip.
//
// Selecting a bank and then writing to it takes separate transactions, so
// Regs must not be shared between goroutines without external locking.
type Regs struct {
	c   conn.Conn
	buf [MaxBlockLen + 1]byte
}

// NewRegs returns a Regs writing through c, usually an *i2c.Dev.
func NewRegs(c conn.Conn) *Regs {
	return &Regs{c: c}
}

// SelectBank points subsequent register addresses at bank.
func (r *Regs) SelectBank(bank byte) error {
	if err := validateBank(bank); err != nil {
		return err
	}
	return r.tx("select bank", BankRegister, []byte{bank})
}

// Write sends data to the currently selected bank starting at reg, split in
// blocks of at most MaxBlockLen bytes.
func (r *Regs) Write(reg byte, data []byte) error {
	if int(reg)+len(data) > 0x100 {
		return fmt.Errorf("%w: 0x%02X+%d", ErrRegisterOverflow, reg, len(data))
	}
	for off := 0; off < len(data); off += MaxBlockLen {
		end := off + MaxBlockLen
		if end > len(data) {
			end = len(data)
		}
		if err := r.tx("block write", reg+byte(off), data[off:end]); err != nil {
			return err
		}
	}
	return nil
}

// WriteBlock selects bank then writes data starting at reg.
func (r *Regs) WriteBlock(bank, reg byte, data []byte) error {
	if err := r.SelectBank(bank); err != nil {
		return err
	}
	return r.Write(reg, data)
}

// WriteRegister sets a single register of bank.
func (r *Regs) WriteRegister(bank, reg, value byte) error {
	return r.WriteBlock(bank, reg, []byte{value})
}

func (r *Regs) tx(op string, reg byte, data []byte) error {
	r.buf[0] = reg
	n := copy(r.buf[1:], data)
	if err := r.c.Tx(r.buf[:n+1], nil); err != nil {
		return &BusError{Op: op, Register: reg, Err: err}
	}
	return nil
}
