package core

// IndicatorEntry paints one key while its layer is active.
// When Lock is non-zero the key shows LockedColor while any of those lock
// LEDs is on, and Color otherwise.
type IndicatorEntry struct {
	Layer       uint8
	Key         Keycode
	Color       RGB
	Lock        LEDState
	LockedColor RGB
}

// ColorFor resolves the entry's color for the given lock state
func (e IndicatorEntry) ColorFor(locks LEDState) RGB {
	if e.Lock != 0 && locks&e.Lock != 0 {
		return e.LockedColor
	}
	return e.Color
}

// DefaultPalette lights the function layer's bindings
var DefaultPalette = []IndicatorEntry{
	// Media controls
	{Layer: 1, Key: KC_W, Color: RGB_GOLD},
	{Layer: 1, Key: KC_S, Color: RGB_GOLD},
	{Layer: 1, Key: KC_A, Color: RGB_SPRINGGREEN},
	{Layer: 1, Key: KC_D, Color: RGB_SPRINGGREEN},

	// Bootloader
	{Layer: 1, Key: KC_BSLS, Color: RGB_MAGENTA},

	// Lighting chords
	{Layer: 1, Key: KC_LSFT, Color: RGB_RED},
	{Layer: 1, Key: KC_LCTL, Color: RGB_GREEN},
	{Layer: 1, Key: KC_LGUI, Color: RGB_BLUE},
	{Layer: 1, Key: KC_RSFT, Color: RGB_PINK},
	{Layer: 1, Key: KC_RCTL, Color: RGB_AZURE},

	// Virtual numpad
	{Layer: 1, Key: KC_T, Color: RGB_WHITE},
	{Layer: 1, Key: KC_Y, Color: RGB_WHITE},
	{Layer: 1, Key: KC_U, Color: RGB_WHITE},
	{Layer: 1, Key: KC_G, Color: RGB_WHITE},
	{Layer: 1, Key: KC_H, Color: RGB_WHITE},
	{Layer: 1, Key: KC_J, Color: RGB_WHITE},
	{Layer: 1, Key: KC_V, Color: RGB_WHITE},
	{Layer: 1, Key: KC_B, Color: RGB_WHITE},
	{Layer: 1, Key: KC_N, Color: RGB_WHITE},

	// Num lock
	{Layer: 1, Key: KC_P, Color: RGB_WHITE, Lock: LED_NUM_LOCK, LockedColor: RGB_RED},

	// Caps word
	{Layer: 1, Key: KC_CAPS, Color: RGB_WHITE},
}
