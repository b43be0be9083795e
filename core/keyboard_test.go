package core

import "testing"

func newTestKeyboard(f *fakeHost) *Keyboard {
	kb := NewKeyboard(f, f, GMMKProANSI(), DefaultPalette, DefaultConfig())
	kb.PostInit()
	return kb
}

func TestKeyboardAppliesSOCDSync(t *testing.T) {
	f := newFakeHost()
	kb := newTestKeyboard(f)

	if !kb.ProcessRecord(press(KC_A)) {
		t.Error("Expected KC_A press to continue")
	}
	f.registered[KC_A] = true // host default handling

	if !kb.ProcessRecord(press(KC_D)) {
		t.Error("Expected KC_D press to continue")
	}
	if f.registered[KC_A] {
		t.Error("Expected KC_A unregistered when KC_D pressed")
	}

	kb.ProcessRecord(release(KC_D))
	if !f.registered[KC_A] {
		t.Error("Expected KC_A re-registered when KC_D released")
	}

	// The vertical axis is untouched
	if _, ok := kb.SOCD(0).ActiveKey(); ok {
		t.Error("Vertical axis must stay idle")
	}
}

func TestKeyboardDroppedEventSkipsLighting(t *testing.T) {
	f := newFakeHost()
	cfg := DefaultConfig()
	cfg.SOCD = []SOCDAxis{{Keys: [2]Keycode{KC_MUTE, KC_Q}, Resolution: SOCD_1_WINS}}
	kb := NewKeyboard(f, f, GMMKProANSI(), DefaultPalette, cfg)
	kb.PostInit()

	kb.ProcessRecord(press(KC_Q))
	f.mods = MOD_LCTL
	if kb.ProcessRecord(press(KC_MUTE)) {
		t.Error("Expected losing key to be dropped")
	}
	if kb.Lighting().Mode() == ModeUserStatic {
		t.Error("Dropped event must not reach the lighting chords")
	}
}

func TestKeyboardSOCDDisable(t *testing.T) {
	f := newFakeHost()
	kb := newTestKeyboard(f)

	kb.ProcessRecord(press(KC_W))
	kb.SetSOCDEnabled(false)
	if kb.SOCD(0).Held(0) {
		t.Error("Disabling must reset held state")
	}

	kb.ProcessRecord(press(KC_W))
	kb.ProcessRecord(press(KC_S))
	if len(f.registered) != 0 {
		t.Errorf("Disabled cleaning must not sync keys, got %v", f.registered)
	}
}

func TestKeyboardHooksDelegate(t *testing.T) {
	f := newFakeHost()
	kb := newTestKeyboard(f)
	SetKeyboard(kb)
	defer SetKeyboard(nil)

	if MustKeyboard() != kb {
		t.Fatal("Expected registered keyboard")
	}
	if !MustKeyboard().RenderIndicators(0, 98) {
		t.Error("Render hook must return true")
	}
	if MustKeyboard().EncoderUpdate(0, true) {
		t.Error("Encoder hook must report handled")
	}
	if len(f.taps) != 1 || f.taps[0] != KC_VOLU {
		t.Errorf("Expected volume up tap, got %v", f.taps)
	}
}

func TestMustKeyboardPanics(t *testing.T) {
	SetKeyboard(nil)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic without a keyboard")
		}
	}()
	MustKeyboard()
}
