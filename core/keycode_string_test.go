package core

import "testing"

func TestKeycodeString(t *testing.T) {
	testCases := []struct {
		kc       Keycode
		expected string
	}{
		{KC_A, "KC_A"},
		{KC_Z, "KC_Z"},
		{KC_1, "KC_1"},
		{KC_0, "KC_0"},
		{KC_F12, "KC_F12"},
		{KC_MUTE, "KC_MUTE"},
		{KC_LCTL, "KC_LCTL"},
		{Keycode(0x5F01), "0x5F01"},
	}

	for _, tc := range testCases {
		if got := KeycodeString(tc.kc); got != tc.expected {
			t.Errorf("KeycodeString(%d): expected %s, got %s", tc.kc, tc.expected, got)
		}
	}
}

func TestParseKeycodeRoundTrip(t *testing.T) {
	for kc := Keycode(0); kc < 0x100; kc++ {
		name := KeycodeString(kc)
		got, ok := ParseKeycode(name)
		if !ok || got != kc {
			t.Errorf("ParseKeycode(%q): expected %d, got %d (ok=%v)", name, kc, got, ok)
		}
	}

	if kc, ok := ParseKeycode("w"); !ok || kc != KC_W {
		t.Errorf("Expected bare lowercase letter to parse, got %d", kc)
	}
	if kc, ok := ParseKeycode("FN"); !ok || kc != KC_FN {
		t.Errorf("Expected FN to parse, got %d", kc)
	}
	if _, ok := ParseKeycode("KC_BOGUS"); ok {
		t.Error("Expected unknown name to fail")
	}
}

func TestModMaskNames(t *testing.T) {
	m := MOD_LCTL | MOD_LALT
	if s := ModMaskString(m); s != "LCTL+LALT" {
		t.Errorf("Expected LCTL+LALT, got %s", s)
	}

	got, ok := ParseModMask("KC_LCTL+MOD_LALT")
	if !ok || got != m {
		t.Errorf("Expected %d, got %d (ok=%v)", m, got, ok)
	}
	if got, ok := ParseModMask("NONE"); !ok || got != 0 {
		t.Error("Expected NONE to parse as 0")
	}
	if _, ok := ParseModMask("LCTL+HYPER"); ok {
		t.Error("Expected unknown modifier to fail")
	}
	if ModBit(KC_RSFT) != MOD_RSFT || ModBit(KC_A) != 0 {
		t.Error("ModBit mismatch")
	}
}
