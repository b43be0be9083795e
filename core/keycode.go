package core

// Keycode identifies a logical key as reported by the host framework.
// Values follow the HID keyboard usage page for basic keys.
type Keycode uint16

// Basic keycodes
const (
	KC_NO   Keycode = 0x00
	KC_A    Keycode = 0x04
	KC_B    Keycode = 0x05
	KC_C    Keycode = 0x06
	KC_D    Keycode = 0x07
	KC_E    Keycode = 0x08
	KC_F    Keycode = 0x09
	KC_G    Keycode = 0x0A
	KC_H    Keycode = 0x0B
	KC_I    Keycode = 0x0C
	KC_J    Keycode = 0x0D
	KC_K    Keycode = 0x0E
	KC_L    Keycode = 0x0F
	KC_M    Keycode = 0x10
	KC_N    Keycode = 0x11
	KC_O    Keycode = 0x12
	KC_P    Keycode = 0x13
	KC_Q    Keycode = 0x14
	KC_R    Keycode = 0x15
	KC_S    Keycode = 0x16
	KC_T    Keycode = 0x17
	KC_U    Keycode = 0x18
	KC_V    Keycode = 0x19
	KC_W    Keycode = 0x1A
	KC_X    Keycode = 0x1B
	KC_Y    Keycode = 0x1C
	KC_Z    Keycode = 0x1D
	KC_1    Keycode = 0x1E
	KC_2    Keycode = 0x1F
	KC_3    Keycode = 0x20
	KC_4    Keycode = 0x21
	KC_5    Keycode = 0x22
	KC_6    Keycode = 0x23
	KC_7    Keycode = 0x24
	KC_8    Keycode = 0x25
	KC_9    Keycode = 0x26
	KC_0    Keycode = 0x27
	KC_ENT  Keycode = 0x28
	KC_ESC  Keycode = 0x29
	KC_BSPC Keycode = 0x2A
	KC_TAB  Keycode = 0x2B
	KC_SPC  Keycode = 0x2C
	KC_MINS Keycode = 0x2D
	KC_EQL  Keycode = 0x2E
	KC_LBRC Keycode = 0x2F
	KC_RBRC Keycode = 0x30
	KC_BSLS Keycode = 0x31
	KC_SCLN Keycode = 0x33
	KC_QUOT Keycode = 0x34
	KC_GRV  Keycode = 0x35
	KC_COMM Keycode = 0x36
	KC_DOT  Keycode = 0x37
	KC_SLSH Keycode = 0x38
	KC_CAPS Keycode = 0x39
	KC_F1   Keycode = 0x3A
	KC_F2   Keycode = 0x3B
	KC_F3   Keycode = 0x3C
	KC_F4   Keycode = 0x3D
	KC_F5   Keycode = 0x3E
	KC_F6   Keycode = 0x3F
	KC_F7   Keycode = 0x40
	KC_F8   Keycode = 0x41
	KC_F9   Keycode = 0x42
	KC_F10  Keycode = 0x43
	KC_F11  Keycode = 0x44
	KC_F12  Keycode = 0x45
	KC_PSCR Keycode = 0x46
	KC_INS  Keycode = 0x49
	KC_HOME Keycode = 0x4A
	KC_PGUP Keycode = 0x4B
	KC_DEL  Keycode = 0x4C
	KC_END  Keycode = 0x4D
	KC_PGDN Keycode = 0x4E
	KC_RGHT Keycode = 0x4F
	KC_LEFT Keycode = 0x50
	KC_DOWN Keycode = 0x51
	KC_UP   Keycode = 0x52
	KC_NUM  Keycode = 0x53
	KC_APP  Keycode = 0x65

	// Consumer keys as the host framework numbers them
	KC_MUTE Keycode = 0xA8
	KC_VOLU Keycode = 0xA9
	KC_VOLD Keycode = 0xAA
	KC_MNXT Keycode = 0xAB
	KC_MPRV Keycode = 0xAC
	KC_MSTP Keycode = 0xAD
	KC_MPLY Keycode = 0xAE

	KC_LCTL Keycode = 0xE0
	KC_LSFT Keycode = 0xE1
	KC_LALT Keycode = 0xE2
	KC_LGUI Keycode = 0xE3
	KC_RCTL Keycode = 0xE4
	KC_RSFT Keycode = 0xE5
	KC_RALT Keycode = 0xE6
	KC_RGUI Keycode = 0xE7

	// Layer key for the function layer. Its LED slot is addressable even
	// though the host resolves the keycode itself.
	KC_FN Keycode = 0x5F00
)

// ModMask is the 8-bit modifier state reported by the host (one bit per modifier)
type ModMask uint8

// Modifier bits
const (
	MOD_LCTL ModMask = 1 << 0
	MOD_LSFT ModMask = 1 << 1
	MOD_LALT ModMask = 1 << 2
	MOD_LGUI ModMask = 1 << 3
	MOD_RCTL ModMask = 1 << 4
	MOD_RSFT ModMask = 1 << 5
	MOD_RALT ModMask = 1 << 6
	MOD_RGUI ModMask = 1 << 7
)

// IsModifier reports whether kc is one of the eight modifier keys
func IsModifier(kc Keycode) bool {
	return kc >= KC_LCTL && kc <= KC_RGUI
}

// ModBit returns the modifier bit for a modifier keycode, or 0 for any other key
func ModBit(kc Keycode) ModMask {
	if !IsModifier(kc) {
		return 0
	}
	return 1 << (kc & 0x07)
}

// Has reports whether every bit of want is held
func (m ModMask) Has(want ModMask) bool {
	return want != 0 && m&want == want
}

// KeyEvent is a single press or release edge delivered by the host
type KeyEvent struct {
	Key     Keycode
	Pressed bool
	Time    uint16 // host timestamp in milliseconds (wraps)
}
