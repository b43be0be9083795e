package core

// fakeHost is a test implementation of Host and Effect
type fakeHost struct {
	mods  ModMask
	layer uint8
	locks LEDState

	taps       []Keycode
	registered map[Keycode]bool

	enabled bool
	flags   LEDFlags
	mode    uint8
	speed   uint8
	hsv     HSV
	steps   []string
	commits []HSV

	leds    [256]RGB
	written [256]bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		registered: make(map[Keycode]bool),
		enabled:    true,
		flags:      LED_FLAG_ALL,
		mode:       1,
		speed:      128,
		hsv:        HSV{H: 10, S: 200, V: 150},
	}
}

func (f *fakeHost) Mods() ModMask { return f.mods }
func (f *fakeHost) HighestLayer() uint8 { return f.layer }
func (f *fakeHost) LockLEDs() LEDState { return f.locks }
func (f *fakeHost) TapCode(kc Keycode) { f.taps = append(f.taps, kc) }
func (f *fakeHost) RegisterCode(kc Keycode) { f.registered[kc] = true }
func (f *fakeHost) UnregisterCode(kc Keycode) {
	delete(f.registered, kc)
}

func (f *fakeHost) Enabled() bool { return f.enabled }
func (f *fakeHost) Toggle() { f.enabled = !f.enabled }
func (f *fakeHost) Flags() LEDFlags { return f.flags }
func (f *fakeHost) Mode() uint8 { return f.mode }
func (f *fakeHost) Speed() uint8 { return f.speed }
func (f *fakeHost) HSV() HSV { return f.hsv }
func (f *fakeHost) SetHSVNoEEPROM(c HSV) { f.hsv = c }
func (f *fakeHost) StepMode(forward bool) { f.step("mode", forward) }
func (f *fakeHost) StepSpeed(up bool) { f.step("speed", up) }
func (f *fakeHost) StepHue(up bool) { f.step("hue", up) }
func (f *fakeHost) StepSat(up bool) { f.step("sat", up) }
func (f *fakeHost) StepVal(up bool) { f.step("val", up) }
func (f *fakeHost) SetColor(i uint8, c RGB) { f.leds[i], f.written[i] = c, true }

func (f *fakeHost) Commit(mode, speed uint8, c HSV) {
	f.commits = append(f.commits, c)
}

func (f *fakeHost) step(what string, up bool) {
	if up {
		f.steps = append(f.steps, what+"+")
	} else {
		f.steps = append(f.steps, what+"-")
	}
}

// frame clears per-frame bookkeeping and renders all LEDs
func (f *fakeHost) frame(l *Lighting) {
	f.written = [256]bool{}
	l.RenderIndicators(0, 255)
}

func newTestLighting(f *fakeHost) *Lighting {
	l := NewLighting(f, f, GMMKProANSI(), DefaultPalette, DefaultConfig())
	l.Init()
	return l
}

func press(kc Keycode) KeyEvent { return KeyEvent{Key: kc, Pressed: true} }
func release(kc Keycode) KeyEvent { return KeyEvent{Key: kc, Pressed: false} }
