package core

// LEDState is the host's lock indicator bitmask (HID LED report order)
type LEDState uint8

// Lock indicator bits
const (
	LED_NUM_LOCK    LEDState = 1 << 0
	LED_CAPS_LOCK   LEDState = 1 << 1
	LED_SCROLL_LOCK LEDState = 1 << 2
	LED_COMPOSE     LEDState = 1 << 3
	LED_KANA        LEDState = 1 << 4
)

// LEDFlags selects which LED groups the built-in effect renders
type LEDFlags uint8

// LED flag values
const (
	LED_FLAG_NONE      LEDFlags = 0x00
	LED_FLAG_MODIFIER  LEDFlags = 0x01
	LED_FLAG_UNDERGLOW LEDFlags = 0x02
	LED_FLAG_KEYLIGHT  LEDFlags = 0x04
	LED_FLAG_INDICATOR LEDFlags = 0x08
	LED_FLAG_ALL       LEDFlags = 0xFF
)

// Host is the keyboard framework surface the callbacks read and drive.
// Implementations are supplied by the firmware target (or a simulator).
type Host interface {
	// Mods returns the currently held modifier bits
	Mods() ModMask

	// HighestLayer returns the highest active keymap layer (0 = base)
	HighestLayer() uint8

	// LockLEDs returns the host's lock indicator state
	LockLEDs() LEDState

	// TapCode sends a press and release of kc
	TapCode(kc Keycode)

	// RegisterCode adds kc to the outgoing report
	RegisterCode(kc Keycode)

	// UnregisterCode removes kc from the outgoing report
	UnregisterCode(kc Keycode)
}

// Effect is the host's built-in lighting system.
// Step and Set methods never persist; only Commit writes storage.
type Effect interface {
	// Enabled reports whether the LED system is on
	Enabled() bool

	// Toggle switches the LED system on or off
	Toggle()

	// Flags returns the LED groups the effect currently renders
	Flags() LEDFlags

	// Mode and Speed return the current effect parameters
	Mode() uint8
	Speed() uint8

	// HSV returns the effect color
	HSV() HSV

	// SetHSVNoEEPROM sets the effect color without persisting it
	SetHSVNoEEPROM(c HSV)

	// StepMode moves to the next (or previous) effect mode
	StepMode(forward bool)

	// StepSpeed raises or lowers the effect speed by the host's step
	StepSpeed(up bool)

	// StepHue, StepSat and StepVal adjust the effect color by the host's steps
	StepHue(up bool)
	StepSat(up bool)
	StepVal(up bool)

	// Commit persists mode, speed and color
	Commit(mode, speed uint8, c HSV)

	// SetColor paints one LED for the current frame
	SetColor(index uint8, c RGB)
}
