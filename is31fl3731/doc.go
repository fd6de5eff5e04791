// Package is31fl3731 speaks the register protocol of the ISSI IS31FL3731
// 144 LED matrix driver.
//
// The chip exposes eight frame banks and a function (config) bank behind a
// single bank-select command register. Every access therefore selects a bank
// first and then writes a run of registers inside it:
//
//	regs := is31fl3731.NewRegs(&i2c.Dev{Bus: bus, Addr: is31fl3731.DefaultAddr})
//	regs.WriteRegister(is31fl3731.ConfigBank, is31fl3731.ModeRegister, is31fl3731.PictureMode)
//
// Block writes longer than MaxBlockLen are split into consecutive chunks.
//
// # Datasheet
//
// https://www.issi.com/WW/pdf/31FL3731.pdf
package is31fl3731
