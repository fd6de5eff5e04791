package is31fl3731

// Function registers, addressed inside ConfigBank.
const (
	ModeRegister      = 0x00
	FrameRegister     = 0x01
	Autoplay1Register = 0x02
	Autoplay2Register = 0x03
	BlinkRegister     = 0x05
	AudioSyncRegister = 0x06
	Breath1Register   = 0x08
	Breath2Register   = 0x09
	ShutdownRegister  = 0x0A
	GainRegister      = 0x0B
	ADCRegister       = 0x0C
)

// BankRegister is the command register selecting which bank subsequent
// register addresses refer to. It is reachable regardless of the current bank.
const BankRegister = 0xFD

// ConfigBank holds the function registers. Banks 0 to MaxFrame hold frame data.
const ConfigBank = 0x0B

// MaxFrame is the highest frame (page) index supported by the chip.
const MaxFrame = 8

// Operating modes written to ModeRegister.
const (
	PictureMode   = 0x00
	AutoplayMode  = 0x08
	AudioplayMode = 0x18
)

// Offsets of the three regions inside a frame bank.
const (
	EnableOffset = 0x00
	BlinkOffset  = 0x12
	ColorOffset  = 0x24
)

const (
	// EnableLen is the size of the LED on/off region of a frame.
	EnableLen = BlinkOffset - EnableOffset
	// PageLen is the size of the PWM (color) region of a frame.
	PageLen = 144
	// MaxBlockLen is the largest payload sent in a single block write.
	MaxBlockLen = 32
)

// DefaultAddr is the 7 bit bus address with the AD pin tied to VCC.
const DefaultAddr = 0x75
