package is31fl3731

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

// nackBus accepts ok transactions and fails every one after that.
type nackBus struct {
	ok int
	n  int
}

func (b *nackBus) String() string { return "nack" }
func (b *nackBus) SetSpeed(f physic.Frequency) error { return nil }
func (b *nackBus) Tx(addr uint16, w, r []byte) error {
	if b.n >= b.ok {
		return errors.New("nack")
	}
	b.n++
	return nil
}

func newRecorded() (*Regs, *i2ctest.Record) {
	rec := &i2ctest.Record{}
	return NewRegs(&i2c.Dev{Bus: rec, Addr: DefaultAddr}), rec
}

func writes(rec *i2ctest.Record) [][]byte {
	out := make([][]byte, 0, len(rec.Ops))
	for _, op := range rec.Ops {
		out = append(out, op.W)
	}
	return out
}

func TestSelectBank(t *testing.T) {
	r, rec := newRecorded()
	require.NoError(t, r.SelectBank(ConfigBank))
	require.Len(t, rec.Ops, 1)
	assert.Equal(t, uint16(DefaultAddr), rec.Ops[0].Addr)
	assert.Equal(t, []byte{BankRegister, ConfigBank}, rec.Ops[0].W)
}

func TestSelectBankInvalid(t *testing.T) {
	r, rec := newRecorded()
	for _, bank := range []byte{9, 0x0A, 0x0C, 0xFF} {
		err := r.SelectBank(bank)
		assert.ErrorIs(t, err, ErrInvalidBank, "bank 0x%02X", bank)
	}
	assert.Empty(t, rec.Ops)
}

func TestWriteBlockChunking(t *testing.T) {
	payload := make([]byte, PageLen)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	r, rec := newRecorded()
	require.NoError(t, r.WriteBlock(1, ColorOffset, payload))

	w := writes(rec)
	require.Len(t, w, 6, "bank select plus 4x32 and 1x16 blocks")
	assert.Equal(t, []byte{BankRegister, 1}, w[0])

	var got []byte
	next := byte(ColorOffset)
	for i, blk := range w[1:] {
		assert.LessOrEqual(t, len(blk)-1, MaxBlockLen, "block %d", i)
		assert.Equal(t, next, blk[0], "block %d starts where the previous ended", i)
		next += byte(len(blk) - 1)
		got = append(got, blk[1:]...)
	}
	assert.Equal(t, 16, len(w[5])-1)
	assert.Equal(t, payload, got)
}

func TestWriteBlockExactMultiple(t *testing.T) {
	r, rec := newRecorded()
	require.NoError(t, r.WriteBlock(0, 0x00, make([]byte, 2*MaxBlockLen)))
	w := writes(rec)
	require.Len(t, w, 3)
	assert.Equal(t, byte(0x00), w[1][0])
	assert.Equal(t, byte(MaxBlockLen), w[2][0])
}

func TestWriteEmpty(t *testing.T) {
	r, rec := newRecorded()
	require.NoError(t, r.Write(0x10, nil))
	assert.Empty(t, rec.Ops)
}

func TestWriteOverflow(t *testing.T) {
	r, rec := newRecorded()
	err := r.Write(0xF0, make([]byte, 17))
	assert.ErrorIs(t, err, ErrRegisterOverflow)
	assert.Empty(t, rec.Ops)
	assert.NoError(t, r.Write(0xF0, make([]byte, 16)))
}

func TestWriteRegister(t *testing.T) {
	r, rec := newRecorded()
	require.NoError(t, r.WriteRegister(ConfigBank, ShutdownRegister, 1))
	assert.Equal(t, [][]byte{
		{BankRegister, ConfigBank},
		{ShutdownRegister, 1},
	}, writes(rec))
}

func TestBusError(t *testing.T) {
	tests := []struct {
		name string
		ok   int
		op   string
		reg  byte
	}{
		{"bank select fails", 0, "select bank", BankRegister},
		{"first block fails", 1, "block write", ColorOffset},
		{"third block fails", 3, "block write", ColorOffset + 2*MaxBlockLen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &nackBus{ok: tt.ok}
			r := NewRegs(&i2c.Dev{Bus: bus, Addr: DefaultAddr})
			err := r.WriteBlock(0, ColorOffset, make([]byte, PageLen))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBus)
			var be *BusError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tt.op, be.Op)
			assert.Equal(t, tt.reg, be.Register)
			assert.Equal(t, tt.ok, bus.n, "no retry after a failure")
		})
	}
}

func TestValidateFrame(t *testing.T) {
	for f := 0; f <= MaxFrame; f++ {
		assert.NoError(t, ValidateFrame(f))
	}
	assert.ErrorIs(t, ValidateFrame(-1), ErrInvalidFrame)
	assert.ErrorIs(t, ValidateFrame(9), ErrInvalidFrame)
}
