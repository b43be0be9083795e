// Layered RGB lighting
// Renders the base-layer lighting mode, the function-layer indicator
// overlay, and applies chord and encoder adjustments.
package core

// LightingMode selects what the base layer looks like
type LightingMode uint8

const (
	ModeEffectEverywhere LightingMode = iota // Built-in effect on every LED
	ModeSideOnly                             // Built-in effect on the side bars, keys dark
	ModeUserStatic                           // User color on the side bars, effect dimmed to black
)

var modeNames = [...]string{"effect_all", "side_only", "user_static"}

func (m LightingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseLightingMode maps a mode name to its value
func ParseLightingMode(s string) (LightingMode, bool) {
	for i, name := range modeNames {
		if s == name {
			return LightingMode(i), true
		}
	}
	return ModeEffectEverywhere, false
}

// EncoderAction is what one encoder detent did
type EncoderAction uint8

const (
	ActionVolume EncoderAction = iota
	ActionMode
	ActionSpeed
	ActionHue
	ActionSat
	ActionVal
)

var actionNames = [...]string{"volume", "mode", "speed", "hue", "sat", "val"}

func (a EncoderAction) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// overlayState tracks the function-layer overlay.
// captured is only meaningful while active is set.
type overlayState struct {
	active   bool
	captured HSV
}

// Lighting is the lighting controller. All methods are called from the
// host's callback thread.
type Lighting struct {
	host    Host
	effect  Effect
	layout  *Layout
	palette []IndicatorEntry
	cfg     Config

	mode    LightingMode
	user    HSV // user static color
	saved   HSV // effect color held while user static mode owns the side bars
	overlay overlayState
}

// NewLighting creates a controller. Init must run before the first frame.
func NewLighting(host Host, effect Effect, layout *Layout, palette []IndicatorEntry, cfg Config) *Lighting {
	return &Lighting{
		host:    host,
		effect:  effect,
		layout:  layout,
		palette: palette,
		cfg:     cfg,
	}
}

// Init applies power-up defaults
func (l *Lighting) Init() {
	l.user = l.cfg.UserHSV
	l.saved = HSV{}
	l.overlay = overlayState{}
	l.mode = l.cfg.DefaultMode
	RecordTrace(EvtPostInit, KC_NO, uint32(l.mode), PackHSV(l.user))
}

// Mode returns the active lighting mode
func (l *Lighting) Mode() LightingMode {
	return l.mode
}

// UserHSV returns the user static color
func (l *Lighting) UserHSV() HSV {
	return l.user
}

// SavedHSV returns the effect color saved on entry to user static mode
func (l *Lighting) SavedHSV() HSV {
	return l.saved
}

// Overlay returns the captured effect color while the overlay is active
func (l *Lighting) Overlay() (HSV, bool) {
	return l.overlay.captured, l.overlay.active
}

func (l *Lighting) setMode(m LightingMode) {
	if m == l.mode {
		return
	}
	RecordTrace(EvtModeChange, KC_NO, uint32(l.mode), uint32(m))
	l.mode = m
}

// effectColor returns the effect color as it stands outside the overlay
func (l *Lighting) effectColor() HSV {
	if l.overlay.active {
		return l.overlay.captured
	}
	return l.effect.HSV()
}

// setEffectColor sets the effect color. While the overlay is active the
// color is parked in the capture and applied when the overlay ends.
func (l *Lighting) setEffectColor(c HSV) {
	if l.overlay.active {
		l.overlay.captured = c
		return
	}
	l.effect.SetHSVNoEEPROM(c)
}

func (l *Lighting) setColor(idx uint8, c RGB, ledMin, ledMax uint8) {
	if idx >= ledMin && idx < ledMax {
		l.effect.SetColor(idx, c)
	}
}

// RenderIndicators runs after the built-in effect each frame and paints
// LEDs in [ledMin, ledMax). Always returns true so later stages still run.
func (l *Lighting) RenderIndicators(ledMin, ledMax uint8) bool {
	layer := l.host.HighestLayer()

	if layer > 0 {
		if !l.overlay.active {
			l.overlay.captured = l.effect.HSV()
			l.overlay.active = true
			l.effect.SetHSVNoEEPROM(HSV_BLACK)
			RecordTrace(EvtOverlayEnter, KC_NO, uint32(layer), PackHSV(l.overlay.captured))
		}
		l.renderPalette(layer, ledMin, ledMax)
		return true
	}

	if l.overlay.active {
		restored := l.overlay.captured
		l.overlay = overlayState{}
		l.effect.SetHSVNoEEPROM(restored)
		RecordTrace(EvtOverlayExit, KC_NO, 0, PackHSV(restored))
	}

	switch l.mode {
	case ModeSideOnly:
		for _, idx := range l.layout.NonSide {
			l.setColor(idx, RGB_BLACK, ledMin, ledMax)
		}
	case ModeUserStatic:
		c := l.user.ToRGB()
		for _, idx := range l.layout.LeftSide {
			l.setColor(idx, c, ledMin, ledMax)
		}
		for _, idx := range l.layout.RightSide {
			l.setColor(idx, c, ledMin, ledMax)
		}
	}

	l.renderCapsRow(ledMin, ledMax)
	return true
}

func (l *Lighting) renderPalette(layer uint8, ledMin, ledMax uint8) {
	locks := l.host.LockLEDs()
	for _, e := range l.palette {
		if e.Layer != layer {
			continue
		}
		idx, ok := l.layout.LED(e.Key)
		if !ok {
			continue
		}
		l.setColor(idx, e.ColorFor(locks), ledMin, ledMax)
	}
}

// renderCapsRow lights the caps row while caps lock is on. Otherwise the
// row is blanked, unless the effect is rendering those LEDs itself.
func (l *Lighting) renderCapsRow(ledMin, ledMax uint8) {
	var c RGB
	switch {
	case l.host.LockLEDs()&LED_CAPS_LOCK != 0:
		c = l.cfg.LockAlert
	case l.effect.Flags() == LED_FLAG_NONE:
		c = RGB_BLACK
	default:
		return
	}
	for _, idx := range l.layout.CapsRow {
		l.setColor(idx, c, ledMin, ledMax)
	}
}

// ProcessKey handles lighting chords on the trigger key's press edge.
// Returns false when the press was consumed by a chord.
func (l *Lighting) ProcessKey(ev KeyEvent) bool {
	if ev.Key != l.cfg.TriggerKey || !ev.Pressed {
		return true
	}

	mods := l.host.Mods()
	chords := l.cfg.Chords
	switch {
	case mods.Has(chords.UserStatic):
		l.toggleUserStatic()
	case mods.Has(chords.SideOnly):
		l.toggleSideOnly()
	case mods.Has(chords.Toggle):
		l.effect.Toggle()
		RecordTrace(EvtToggle, ev.Key, boolToU32(l.effect.Enabled()), 0)
	case mods.Has(chords.Save):
		l.commit()
	default:
		return true
	}
	return false
}

func (l *Lighting) toggleUserStatic() {
	if l.mode == ModeUserStatic {
		l.setMode(ModeEffectEverywhere)
		l.setEffectColor(l.saved)
		return
	}
	// Keep hue and saturation, black out the effect while the user color shows
	l.saved = l.effectColor()
	l.setEffectColor(HSV_BLACK)
	l.setMode(ModeUserStatic)
}

func (l *Lighting) toggleSideOnly() {
	if l.mode == ModeUserStatic {
		l.setEffectColor(l.saved)
	}
	if l.mode == ModeSideOnly {
		l.setMode(ModeEffectEverywhere)
	} else {
		l.setMode(ModeSideOnly)
	}
}

func (l *Lighting) commit() {
	mode, speed, c := l.effect.Mode(), l.effect.Speed(), l.effectColor()
	l.effect.Commit(mode, speed, c)
	RecordTrace(EvtCommit, KC_NO, uint32(mode), PackHSV(c))
}

// EncoderAction resolves what a detent does for the held modifiers.
// Value (both color modifiers) beats hue, hue beats saturation, and
// volume is the fallback.
func (l *Lighting) EncoderAction(mods ModMask) EncoderAction {
	b := l.cfg.Encoder
	if l.mode != ModeUserStatic {
		if mods.Has(b.ModeStep) {
			return ActionMode
		}
		if mods.Has(b.SpeedStep) {
			return ActionSpeed
		}
	}
	switch {
	case mods.Has(b.Hue | b.Sat):
		return ActionVal
	case mods.Has(b.Hue):
		return ActionHue
	case mods.Has(b.Sat):
		return ActionSat
	}
	return ActionVolume
}

// EncoderUpdate handles one encoder detent. Adjustments are never
// persisted; the save chord writes storage. Always returns false.
func (l *Lighting) EncoderUpdate(index uint8, clockwise bool) bool {
	action := l.EncoderAction(l.host.Mods())

	if l.mode == ModeUserStatic {
		switch action {
		case ActionHue:
			l.user = l.user.Adjust(clockwise, l.cfg.HueStep, 0, 0)
		case ActionSat:
			l.user = l.user.Adjust(clockwise, 0, l.cfg.SatStep, 0)
		case ActionVal:
			l.user = l.user.Adjust(clockwise, 0, 0, l.cfg.ValStep)
		}
	} else {
		switch action {
		case ActionMode:
			l.effect.StepMode(clockwise)
		case ActionSpeed:
			l.effect.StepSpeed(clockwise)
		case ActionHue:
			l.effect.StepHue(clockwise)
		case ActionSat:
			l.effect.StepSat(clockwise)
		case ActionVal:
			l.effect.StepVal(clockwise)
		}
	}

	if action == ActionVolume {
		if clockwise {
			l.host.TapCode(KC_VOLU)
		} else {
			l.host.TapCode(KC_VOLD)
		}
	}

	RecordTrace(EvtEncoder, KC_NO, uint32(action), boolToU32(clockwise))
	return false
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
