// Package ledshim controls a Pimoroni LED SHIM via I²C.
//
// The LED SHIM is a row of 28 RGB LEDs wired to an ISSI IS31FL3731 matrix
// controller. The chip has 144 PWM channels spread over a matrix; this
// package hides the matrix and exposes the strip as 28 pixels.
// The driver implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 28 RGB pixels in a single row
// - 8-bit intensity per channel, gamma corrected before it reaches the chip
// - Per-pixel and global brightness
// - Double buffered: every update is written to the hidden frame, then shown
//
// # Hardware Connection
//
// The SHIM sits on the Raspberry Pi header and talks on I²C bus 1:
//
//	SHIM Pin → System Pin
//	SDA      → GPIO2 (SDA1)
//	SCL      → GPIO3 (SCL1)
//	VCC      → 3.3V
//	GND      → GND
//
// The chip answers at address 0x75.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//		"github.com/flavioheleno/ledshim"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ledshim.New(bus, nil)
//		defer dev.Shutdown()
//
//		// Red to blue along the strip
//		for i := 0; i < dev.Width(); i++ {
//			v := float64(i * 255 / (dev.Width() - 1))
//			dev.SetPixel(i, 255-v, 0, v, 1.0)
//		}
//		dev.Show()
//	}
//
// # Lazy Initialization
//
// New does not touch the bus. The chip is reset and configured by Setup,
// which Show calls on its first invocation. Pixels can be prepared before
// the device is reachable.
//
// # Brightness
//
// Each channel is multiplied by the global brightness (SetBrightness) and the
// pixel brightness given to SetPixel, truncated and clamped to 0-255, and
// then looked up in the gamma table (see Gamma).
//
// # Shutdown
//
// Shutdown blanks the strip when clear on exit is enabled (the default), so
// call it from the program's teardown path before closing the bus:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	defer dev.Shutdown()
//
// # Concurrency
//
// A Dev must only be used from one goroutine at a time. Bank selection and
// the register writes that follow it are separate bus transactions.
//
// # Other Boards
//
// Boards wiring the IS31FL3731 differently can supply their own Layout in
// Opts. The register protocol itself lives in the is31fl3731 subpackage.
package ledshim
