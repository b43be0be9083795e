package core

type keycodeName struct {
	code Keycode
	name string
}

// Names of the keycodes this firmware refers to. Letters and digits are
// generated rather than listed.
var keycodeNames = []keycodeName{
	{KC_NO, "KC_NO"},
	{KC_ENT, "KC_ENT"}, {KC_ESC, "KC_ESC"},
	{KC_BSPC, "KC_BSPC"}, {KC_TAB, "KC_TAB"},
	{KC_SPC, "KC_SPC"}, {KC_MINS, "KC_MINS"},
	{KC_EQL, "KC_EQL"}, {KC_LBRC, "KC_LBRC"},
	{KC_RBRC, "KC_RBRC"}, {KC_BSLS, "KC_BSLS"},
	{KC_SCLN, "KC_SCLN"}, {KC_QUOT, "KC_QUOT"},
	{KC_GRV, "KC_GRV"}, {KC_COMM, "KC_COMM"},
	{KC_DOT, "KC_DOT"}, {KC_SLSH, "KC_SLSH"},
	{KC_CAPS, "KC_CAPS"}, {KC_PSCR, "KC_PSCR"},
	{KC_INS, "KC_INS"}, {KC_HOME, "KC_HOME"},
	{KC_PGUP, "KC_PGUP"}, {KC_DEL, "KC_DEL"},
	{KC_END, "KC_END"}, {KC_PGDN, "KC_PGDN"},
	{KC_RGHT, "KC_RGHT"}, {KC_LEFT, "KC_LEFT"},
	{KC_DOWN, "KC_DOWN"}, {KC_UP, "KC_UP"},
	{KC_NUM, "KC_NUM"}, {KC_APP, "KC_APP"},
	{KC_MUTE, "KC_MUTE"}, {KC_VOLU, "KC_VOLU"},
	{KC_VOLD, "KC_VOLD"}, {KC_MNXT, "KC_MNXT"},
	{KC_MPRV, "KC_MPRV"}, {KC_MSTP, "KC_MSTP"},
	{KC_MPLY, "KC_MPLY"},
	{KC_LCTL, "KC_LCTL"}, {KC_LSFT, "KC_LSFT"},
	{KC_LALT, "KC_LALT"}, {KC_LGUI, "KC_LGUI"},
	{KC_RCTL, "KC_RCTL"}, {KC_RSFT, "KC_RSFT"},
	{KC_RALT, "KC_RALT"}, {KC_RGUI, "KC_RGUI"},
	{KC_FN, "KC_FN"},
}

var modNames = [8]string{"LCTL", "LSFT", "LALT", "LGUI", "RCTL", "RSFT", "RALT", "RGUI"}

// KeycodeString returns a readable name for kc, e.g. "KC_W".
// Unnamed codes are rendered as hex ("0x5F01").
func KeycodeString(kc Keycode) string {
	switch {
	case kc >= KC_A && kc <= KC_Z:
		return "KC_" + string(rune('A'+(kc-KC_A)))
	case kc >= KC_1 && kc <= KC_9:
		return "KC_" + string(rune('1'+(kc-KC_1)))
	case kc == KC_0:
		return "KC_0"
	case kc >= KC_F1 && kc <= KC_F12:
		return "KC_F" + itoa(int(kc-KC_F1)+1)
	}

	for _, n := range keycodeNames {
		if n.code == kc {
			return n.name
		}
	}
	return hex16(uint16(kc))
}

// ParseKeycode is the inverse of KeycodeString. The "KC_" prefix is optional.
func ParseKeycode(s string) (Keycode, bool) {
	if v, ok := parseHex16(s); ok {
		return Keycode(v), true
	}
	if len(s) < 3 || s[:3] != "KC_" {
		s = "KC_" + s
	}

	rest := s[3:]
	if len(rest) == 1 {
		c := rest[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return KC_A + Keycode(c-'A'), true
		case c >= 'a' && c <= 'z':
			return KC_A + Keycode(c-'a'), true
		case c == '0':
			return KC_0, true
		case c >= '1' && c <= '9':
			return KC_1 + Keycode(c-'1'), true
		}
	}
	if len(rest) >= 2 && rest[0] == 'F' {
		n := 0
		for i := 1; i < len(rest); i++ {
			if rest[i] < '0' || rest[i] > '9' {
				n = 0
				break
			}
			n = n*10 + int(rest[i]-'0')
		}
		if n >= 1 && n <= 12 {
			return KC_F1 + Keycode(n-1), true
		}
	}

	for _, n := range keycodeNames {
		if n.name == s {
			return n.code, true
		}
	}
	return KC_NO, false
}

// ModMaskString renders m as modifier names joined by '+', e.g. "LCTL+LALT"
func ModMaskString(m ModMask) string {
	if m == 0 {
		return "NONE"
	}
	out := ""
	for i := 0; i < 8; i++ {
		if m&(1<<i) == 0 {
			continue
		}
		if out != "" {
			out += "+"
		}
		out += modNames[i]
	}
	return out
}

// ParseModMask parses names joined by '+' ("LCTL+LALT"). "NONE" and "" give 0.
func ParseModMask(s string) (ModMask, bool) {
	if s == "" || s == "NONE" {
		return 0, true
	}
	var m ModMask
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '+' {
			continue
		}
		part := s[start:i]
		start = i + 1

		found := false
		for bit, name := range modNames {
			if part == name || part == "MOD_"+name || part == "KC_"+name {
				m |= 1 << bit
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return m, true
}
