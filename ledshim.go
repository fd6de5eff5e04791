package ledshim

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/flavioheleno/ledshim/is31fl3731"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Opts is the configuration for the LED SHIM.
type Opts struct {
	// Bus address (default: is31fl3731.DefaultAddr)
	Addr uint16

	// Pixel geometry. Layout defaults to LEDShim; Width, when set, must
	// match the layout.
	Width  int
	Layout *Layout

	// Bus speed applied during setup (0 leaves the bus untouched)
	Speed physic.Frequency

	// Logger receives debug output (nil disables logging)
	Logger *zerolog.Logger
}

type state uint8

const (
	uninitialized state = iota
	initializing
	ready
)

// Dev is the device handle for the LED SHIM.
//
// The frame buffer is double buffered on the chip: Show always writes the
// frame that is not displayed and then switches the display to it.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	bus  i2c.Bus
	c    *i2c.Dev
	regs *is31fl3731.Regs

	layout *Layout
	fb     *FrameBuffer
	log    zerolog.Logger
	speed  physic.Frequency

	// State
	state        state
	currentFrame int
	brightness   float64
	clearOnExit  bool
	halted       bool
}

// New returns a handle to a LED SHIM on bus b.
//
// No bus traffic happens until Setup or the first Show.
func New(b i2c.Bus, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, errors.New("ledshim: nil bus")
	}
	if opts == nil {
		opts = &Opts{}
	}
	addr := opts.Addr
	if addr == 0 {
		addr = is31fl3731.DefaultAddr
	}
	if addr > 0x7F {
		return nil, fmt.Errorf("ledshim: address 0x%X is not 7 bit", addr)
	}
	layout := opts.Layout
	if layout == nil {
		layout = &LEDShim
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if opts.Width != 0 && opts.Width != layout.Width() {
		return nil, fmt.Errorf("ledshim: width %d does not match layout width %d", opts.Width, layout.Width())
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	c := &i2c.Dev{Bus: b, Addr: addr}
	return &Dev{
		bus:         b,
		c:           c,
		regs:        is31fl3731.NewRegs(c),
		layout:      layout,
		fb:          NewFrameBuffer(layout.Width()),
		log:         log,
		speed:       opts.Speed,
		brightness:  1.0,
		clearOnExit: true,
	}, nil
}

// Setup initializes the chip. It runs once; later calls return nil.
//
// A failed setup leaves the device uninitialized so that it can be retried.
func (d *Dev) Setup() error {
	if d.halted {
		return ErrHalted
	}
	if d.state != uninitialized {
		return nil
	}
	d.state = initializing
	if err := d.init(); err != nil {
		d.state = uninitialized
		d.log.Error().Err(err).Msg("setup failed")
		return err
	}
	d.state = ready
	d.log.Debug().Int("frame", d.currentFrame).Msg("setup complete")
	return nil
}

// init sends the initialization sequence to the chip.
func (d *Dev) init() error {
	d.log.Debug().Stringer("dev", d.c).Msg("setting up")
	if d.speed != 0 {
		if err := d.bus.SetSpeed(d.speed); err != nil {
			return fmt.Errorf("ledshim: failed to set bus speed: %w", err)
		}
	}
	if err := d.Reset(); err != nil {
		return err
	}
	if err := d.show(); err != nil {
		return err
	}

	if err := d.regs.SelectBank(is31fl3731.ConfigBank); err != nil {
		return err
	}
	if err := d.regs.Write(is31fl3731.ModeRegister, []byte{is31fl3731.PictureMode}); err != nil {
		return err
	}
	if err := d.regs.Write(is31fl3731.AudioSyncRegister, []byte{0}); err != nil {
		return err
	}

	// Both pages used for double buffering need the same enable mask.
	for _, bank := range []byte{1, 0} {
		if err := d.regs.WriteBlock(bank, is31fl3731.EnableOffset, d.layout.Enable[:]); err != nil {
			return err
		}
	}
	return nil
}

// Show renders the frame buffer on the LEDs, initializing the chip first if
// needed.
func (d *Dev) Show() error {
	if d.halted {
		return ErrHalted
	}
	if err := d.Setup(); err != nil {
		return err
	}
	return d.show()
}

func (d *Dev) show() error {
	next := 1
	if d.currentFrame == 1 {
		next = 0
	}
	page, err := d.render()
	if err != nil {
		return err
	}
	if err := d.regs.WriteBlock(byte(next), is31fl3731.ColorOffset, page[:]); err != nil {
		d.log.Error().Err(err).Int("frame", next).Msg("page write failed")
		return err
	}
	return d.Frame(next, true)
}

// render computes the gamma corrected PWM page for the current buffer.
func (d *Dev) render() ([is31fl3731.PageLen]byte, error) {
	var page [is31fl3731.PageLen]byte
	for i, p := range d.fb.pix {
		r, g, b, err := d.layout.Offsets(i)
		if err != nil {
			return page, err
		}
		page[r] = Gamma(scale(p.R, d.brightness, p.Brightness))
		page[g] = Gamma(scale(p.G, d.brightness, p.Brightness))
		page[b] = Gamma(scale(p.B, d.brightness, p.Brightness))
	}
	return page, nil
}

// scale applies both brightness factors and clamps the result to [0, 255].
func scale(v uint8, global, pixel float64) uint8 {
	s := math.Trunc(float64(v) * global * pixel)
	switch {
	case math.IsNaN(s) || s <= 0:
		return 0
	case s >= 255:
		return 255
	}
	return uint8(s)
}

// Frame records frame as the current frame and, if show is set, tells the
// chip to display it.
func (d *Dev) Frame(frame int, show bool) error {
	if err := is31fl3731.ValidateFrame(frame); err != nil {
		return err
	}
	if show {
		if err := d.regs.WriteRegister(is31fl3731.ConfigBank, is31fl3731.FrameRegister, byte(frame)); err != nil {
			return err
		}
	}
	d.currentFrame = frame
	d.log.Debug().Int("frame", frame).Bool("show", show).Msg("frame")
	return nil
}

// Sleep puts the chip in software shutdown (true) or wakes it up (false).
func (d *Dev) Sleep(sleep bool) error {
	var v byte
	if !sleep {
		v = 1
	}
	return d.regs.WriteRegister(is31fl3731.ConfigBank, is31fl3731.ShutdownRegister, v)
}

// Reset cycles the chip through software shutdown.
func (d *Dev) Reset() error {
	if err := d.Sleep(true); err != nil {
		return err
	}
	return d.Sleep(false)
}

// SetPixel sets pixel i to the color r, g, b scaled by brightness.
//
// Only the buffer is modified; call Show to update the LEDs.
func (d *Dev) SetPixel(i int, r, g, b, brightness float64) error {
	return d.fb.SetPixel(i, r, g, b, brightness)
}

// SetAll sets every pixel to the same color and brightness.
func (d *Dev) SetAll(r, g, b, brightness float64) error {
	return d.fb.SetAll(r, g, b, brightness)
}

// Pixel returns the buffered state of pixel i.
func (d *Dev) Pixel(i int) (Pixel, error) {
	return d.fb.At(i)
}

// Clear turns off every pixel in the buffer.
func (d *Dev) Clear() {
	d.fb.Clear()
}

// SetBrightness sets the global brightness applied on top of the per pixel
// brightness.
func (d *Dev) SetBrightness(brightness float64) {
	d.brightness = brightness
}

// Brightness returns the global brightness.
func (d *Dev) Brightness() float64 {
	return d.brightness
}

// SetClearOnExit controls whether Shutdown blanks the LEDs.
func (d *Dev) SetClearOnExit(v bool) {
	d.clearOnExit = v
}

// CurrentFrame returns the frame the chip is displaying.
func (d *Dev) CurrentFrame() int {
	return d.currentFrame
}

// Width returns the number of pixels.
func (d *Dev) Width() int {
	return d.fb.Len()
}

// Shutdown blanks the LEDs if clear on exit is enabled and the chip was set
// up. The device can not be used afterwards.
//
// Call it before closing the bus.
func (d *Dev) Shutdown() error {
	if d.halted {
		return nil
	}
	defer func() { d.halted = true }()
	if d.state != ready || !d.clearOnExit {
		d.log.Debug().Msg("shutdown")
		return nil
	}
	d.fb.Clear()
	if err := d.show(); err != nil {
		return err
	}
	d.log.Debug().Msg("shutdown, display cleared")
	return nil
}

// Halt implements conn.Resource. It is equivalent to Shutdown.
func (d *Dev) Halt() error {
	return d.Shutdown()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer. The strip is a single row.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.fb.Len(), 1)
}

// Draw implements display.Drawer.
//
// The first row of dst is copied into the buffer; alpha becomes the per
// pixel brightness. The result is shown immediately.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}
	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		p := sp.Add(image.Pt(x-dst.Min.X, r.Min.Y-dst.Min.Y))
		c := color.NRGBAModel.Convert(src.At(p.X, p.Y)).(color.NRGBA)
		d.fb.pix[x] = Pixel{R: c.R, G: c.G, B: c.B, Brightness: float64(c.A) / 255}
	}
	return d.Show()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ledshim.Dev{%s, %dx1}", d.c, d.fb.Len())
}
