// Package sim is an in-memory keyboard framework for exercising the
// keyboard hooks without hardware.
package sim

import (
	"keyglow/core"
)

// Built-in effect step sizes, as the host framework ships them
const (
	HueStep   = 8
	SatStep   = 16
	ValStep   = 16
	SpeedStep = 16
)

// EffectNames lists the simulated effect modes. Every mode renders as a
// solid fill of the effect color.
var EffectNames = []string{
	"solid_color",
	"breathing",
	"band_val",
	"cycle_all",
	"cycle_left_right",
	"rainbow_moving_chevron",
	"typing_heatmap",
	"solid_reactive",
}

// Stored is the persisted effect state
type Stored struct {
	Mode  uint8
	Speed uint8
	HSV   core.HSV
}

// Board implements core.Host and core.Effect over plain memory
type Board struct {
	layout *core.Layout

	extraMods core.ModMask
	layer     uint8
	locks     core.LEDState
	report    []core.Keycode
	taps      []core.Keycode

	enabled bool
	flags   core.LEDFlags
	mode    uint8
	speed   uint8
	hsv     core.HSV

	stored  Stored
	commits int

	leds []core.RGB
}

// NewBoard creates a board with the effect on and loaded from storage
func NewBoard(layout *core.Layout, stored Stored) *Board {
	return &Board{
		layout:  layout,
		enabled: true,
		flags:   core.LED_FLAG_ALL,
		mode:    stored.Mode,
		speed:   stored.Speed,
		hsv:     stored.HSV,
		stored:  stored,
		leds:    make([]core.RGB, layout.LEDCount),
	}
}

// Layout returns the board's LED map
func (b *Board) Layout() *core.Layout { return b.layout }

// Mods returns held modifier keys plus any forced with SetMods
func (b *Board) Mods() core.ModMask {
	m := b.extraMods
	for _, kc := range b.report {
		m |= core.ModBit(kc)
	}
	return m
}

// SetMods forces modifiers on independently of the report
func (b *Board) SetMods(m core.ModMask) { b.extraMods = m }

func (b *Board) HighestLayer() uint8 { return b.layer }

// SetLayer activates layer n (0 = base only)
func (b *Board) SetLayer(n uint8) { b.layer = n }

func (b *Board) LockLEDs() core.LEDState { return b.locks }

// SetLock switches lock indicator bits on or off
func (b *Board) SetLock(bits core.LEDState, on bool) {
	if on {
		b.locks |= bits
	} else {
		b.locks &^= bits
	}
}

func (b *Board) TapCode(kc core.Keycode) {
	b.taps = append(b.taps, kc)
}

func (b *Board) RegisterCode(kc core.Keycode) {
	for _, k := range b.report {
		if k == kc {
			return
		}
	}
	b.report = append(b.report, kc)
}

func (b *Board) UnregisterCode(kc core.Keycode) {
	for i, k := range b.report {
		if k == kc {
			b.report = append(b.report[:i], b.report[i+1:]...)
			return
		}
	}
}

// Report returns the keys currently in the outgoing report, in press order
func (b *Board) Report() []core.Keycode {
	return append([]core.Keycode(nil), b.report...)
}

// Taps returns every tapped keycode so far
func (b *Board) Taps() []core.Keycode {
	return append([]core.Keycode(nil), b.taps...)
}

func (b *Board) Enabled() bool { return b.enabled }

func (b *Board) Toggle() { b.enabled = !b.enabled }

func (b *Board) Flags() core.LEDFlags { return b.flags }

// SetFlags selects the LED groups the effect renders
func (b *Board) SetFlags(f core.LEDFlags) { b.flags = f }

func (b *Board) Mode() uint8 { return b.mode }

func (b *Board) Speed() uint8 { return b.speed }

func (b *Board) HSV() core.HSV { return b.hsv }

func (b *Board) SetHSVNoEEPROM(c core.HSV) { b.hsv = c }

func (b *Board) StepMode(forward bool) {
	n := uint8(len(EffectNames))
	if forward {
		b.mode = (b.mode + 1) % n
	} else {
		b.mode = (b.mode + n - 1) % n
	}
}

func (b *Board) StepSpeed(up bool) {
	if up {
		b.speed = core.AddSat8(b.speed, SpeedStep)
	} else {
		b.speed = core.SubSat8(b.speed, SpeedStep)
	}
}

func (b *Board) StepHue(up bool) { b.hsv = b.hsv.Adjust(up, HueStep, 0, 0) }

func (b *Board) StepSat(up bool) { b.hsv = b.hsv.Adjust(up, 0, SatStep, 0) }

func (b *Board) StepVal(up bool) { b.hsv = b.hsv.Adjust(up, 0, 0, ValStep) }

func (b *Board) Commit(mode, speed uint8, c core.HSV) {
	b.stored = Stored{Mode: mode, Speed: speed, HSV: c}
	b.commits++
}

// Stored returns the persisted effect state and the number of writes
func (b *Board) Stored() (Stored, int) { return b.stored, b.commits }

func (b *Board) SetColor(index uint8, c core.RGB) {
	if int(index) < len(b.leds) {
		b.leds[index] = c
	}
}

// LEDs returns the last rendered frame
func (b *Board) LEDs() []core.RGB {
	return b.leds
}

// Frame renders one LED frame: the effect fill, then the indicator hook.
// A disabled LED system renders black and skips the hook.
func (b *Board) Frame(kb *core.Keyboard) {
	fill := core.RGB_BLACK
	if b.enabled && b.flags != core.LED_FLAG_NONE {
		fill = b.hsv.ToRGB()
	}
	for i := range b.leds {
		b.leds[i] = fill
	}
	if b.enabled {
		kb.RenderIndicators(0, b.layout.LEDCount)
	}
}
