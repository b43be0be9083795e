//go:build rp2040

package main

import (
	"machine"
	"machine/usb/hid/keyboard"

	"keyglow/core"
)

// directKey is one switch wired from a GPIO to ground
type directKey struct {
	pin machine.Pin
	kc  core.Keycode

	down     bool
	changeAt uint16
}

const debounceMillis = 5

// hidKeyboard abstracts over the USB stack's unexported keyboard type
type hidKeyboard interface {
	Down(c keyboard.Keycode) error
	Up(c keyboard.Keycode) error
	Press(c keyboard.Keycode) error
	NumLockLed() bool
	CapsLockLed() bool
	ScrollLockLed() bool
}

// padHost is the framework side of a direct-wired pad: it owns the HID
// report, the modifier state and the function layer.
type padHost struct {
	hid   hidKeyboard
	mods  core.ModMask
	layer uint8
}

func newPadHost() *padHost {
	return &padHost{hid: keyboard.Port()}
}

func (h *padHost) Mods() core.ModMask { return h.mods }

func (h *padHost) HighestLayer() uint8 { return h.layer }

func (h *padHost) LockLEDs() core.LEDState {
	var s core.LEDState
	if h.hid.NumLockLed() {
		s |= core.LED_NUM_LOCK
	}
	if h.hid.CapsLockLed() {
		s |= core.LED_CAPS_LOCK
	}
	if h.hid.ScrollLockLed() {
		s |= core.LED_SCROLL_LOCK
	}
	return s
}

func (h *padHost) TapCode(kc core.Keycode) {
	h.hid.Press(hidKeycode(kc))
}

func (h *padHost) RegisterCode(kc core.Keycode) {
	if kc == core.KC_FN {
		h.layer = 1
		return
	}
	h.mods |= core.ModBit(kc)
	h.hid.Down(hidKeycode(kc))
}

func (h *padHost) UnregisterCode(kc core.Keycode) {
	if kc == core.KC_FN {
		h.layer = 0
		return
	}
	h.mods &^= core.ModBit(kc)
	h.hid.Up(hidKeycode(kc))
}

// hidKeycode converts a HID usage to the USB stack's encoding:
// 0xE0xx for modifiers, 0xE4xx for consumer controls, 0xF0xx for keys.
func hidKeycode(kc core.Keycode) keyboard.Keycode {
	switch {
	case core.IsModifier(kc):
		return keyboard.Keycode(0xE000 | uint16(core.ModBit(kc)))
	case kc == core.KC_MUTE:
		return keyboard.Keycode(0xE400 | 0xE2)
	case kc == core.KC_VOLU:
		return keyboard.Keycode(0xE400 | 0xE9)
	case kc == core.KC_VOLD:
		return keyboard.Keycode(0xE400 | 0xEA)
	}
	return keyboard.Keycode(0xF000 | uint16(kc&0xFF))
}

// scan polls every switch and calls fn for each debounced edge
func scan(keys []directKey, now uint16, fn func(core.KeyEvent)) {
	for i := range keys {
		k := &keys[i]
		down := !k.pin.Get()
		if down == k.down || now-k.changeAt < debounceMillis {
			continue
		}
		k.down = down
		k.changeAt = now
		fn(core.KeyEvent{Key: k.kc, Pressed: down, Time: now})
	}
}
