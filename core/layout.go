package core

// Layout maps logical keys and LED groups to LED indices of one board
type Layout struct {
	Name     string
	LEDCount uint8

	// Keys maps a keycode to the LED under that key
	Keys map[Keycode]uint8

	// Side light bars, front to back
	LeftSide  []uint8
	RightSide []uint8

	// Every LED that is not part of a side bar
	NonSide []uint8

	// Lock indicator row (the caps lock row)
	CapsRow []uint8
}

// NewLayout builds a layout and derives NonSide and CapsRow.
// capsRow lists keys; keys missing from the map are skipped.
func NewLayout(name string, ledCount uint8, keys map[Keycode]uint8, left, right []uint8, capsRow []Keycode) *Layout {
	l := &Layout{
		Name:      name,
		LEDCount:  ledCount,
		Keys:      keys,
		LeftSide:  left,
		RightSide: right,
	}

	var side [256]bool
	for _, idx := range left {
		side[idx] = true
	}
	for _, idx := range right {
		side[idx] = true
	}
	for i := 0; i < int(ledCount); i++ {
		if !side[i] {
			l.NonSide = append(l.NonSide, uint8(i))
		}
	}

	for _, kc := range capsRow {
		if idx, ok := keys[kc]; ok {
			l.CapsRow = append(l.CapsRow, idx)
		}
	}
	return l
}

// LED returns the LED index under kc
func (l *Layout) LED(kc Keycode) (uint8, bool) {
	idx, ok := l.Keys[kc]
	return idx, ok
}

// IsSide reports whether idx belongs to one of the side bars
func (l *Layout) IsSide(idx uint8) bool {
	for _, s := range l.LeftSide {
		if s == idx {
			return true
		}
	}
	for _, s := range l.RightSide {
		if s == idx {
			return true
		}
	}
	return false
}

// GMMKProANSI returns the LED map of the 75% ANSI board with an encoder
// and two 8-LED side bars (98 LEDs, column-major key order).
func GMMKProANSI() *Layout {
	keys := map[Keycode]uint8{
		KC_ESC: 0, KC_GRV: 1, KC_TAB: 2, KC_CAPS: 3, KC_LSFT: 4, KC_LCTL: 5,
		KC_F1: 6, KC_1: 7, KC_Q: 8, KC_A: 9, KC_Z: 10, KC_LGUI: 11,
		KC_F2: 12, KC_2: 13, KC_W: 14, KC_S: 15, KC_X: 16, KC_LALT: 17,
		KC_F3: 18, KC_3: 19, KC_E: 20, KC_D: 21, KC_C: 22,
		KC_F4: 23, KC_4: 24, KC_R: 25, KC_F: 26, KC_V: 27,
		KC_F5: 28, KC_5: 29, KC_T: 30, KC_G: 31, KC_B: 32, KC_SPC: 33,
		KC_F6: 34, KC_6: 35, KC_Y: 36, KC_H: 37, KC_N: 38,
		KC_F7: 39, KC_7: 40, KC_U: 41, KC_J: 42, KC_M: 43,
		KC_F8: 44, KC_8: 45, KC_I: 46, KC_K: 47, KC_COMM: 48, KC_RALT: 49,
		KC_F9: 50, KC_9: 51, KC_O: 52, KC_L: 53, KC_DOT: 54, KC_FN: 55,
		KC_F10: 56, KC_0: 57, KC_P: 58, KC_SCLN: 59, KC_SLSH: 60,
		KC_F11: 61, KC_MINS: 62, KC_LBRC: 63, KC_QUOT: 64, KC_RCTL: 65,
		KC_F12: 66, KC_PSCR: 69, KC_DEL: 72, KC_PGUP: 75, KC_EQL: 78,
		KC_RGHT: 79, KC_END: 82, KC_BSPC: 85, KC_PGDN: 86, KC_RBRC: 89,
		KC_RSFT: 90, KC_BSLS: 93, KC_UP: 94, KC_LEFT: 95, KC_ENT: 96, KC_DOWN: 97,
	}
	left := []uint8{67, 70, 73, 76, 80, 83, 87, 91}
	right := []uint8{68, 71, 74, 77, 81, 84, 88, 92}
	capsRow := []Keycode{
		KC_CAPS, KC_A, KC_S, KC_D, KC_F, KC_G, KC_H,
		KC_J, KC_K, KC_L, KC_SCLN, KC_QUOT, KC_ENT,
	}
	return NewLayout("gmmk_pro_ansi", 98, keys, left, right, capsRow)
}
