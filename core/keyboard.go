package core

// Keyboard bundles the per-board state behind the host framework's hooks:
// post-init, per-keystroke, per-frame indicators and per-encoder-tick.
type Keyboard struct {
	host     Host
	lighting *Lighting
	socd     []*SOCDCleaner

	socdEnabled bool
}

// NewKeyboard creates the hook set for one board
func NewKeyboard(host Host, effect Effect, layout *Layout, palette []IndicatorEntry, cfg Config) *Keyboard {
	kb := &Keyboard{
		host:        host,
		lighting:    NewLighting(host, effect, layout, palette, cfg),
		socdEnabled: true,
	}
	for _, axis := range cfg.SOCD {
		kb.socd = append(kb.socd, NewSOCDCleaner(axis.Keys[0], axis.Keys[1], axis.Resolution))
	}
	return kb
}

// Lighting returns the lighting controller
func (k *Keyboard) Lighting() *Lighting {
	return k.lighting
}

// SOCD returns the cleaner for axis i (in configuration order)
func (k *Keyboard) SOCD(i int) *SOCDCleaner {
	return k.socd[i]
}

// SetSOCDEnabled turns all SOCD cleaning on or off
func (k *Keyboard) SetSOCDEnabled(enabled bool) {
	if !enabled {
		for _, c := range k.socd {
			c.Reset()
		}
	}
	k.socdEnabled = enabled
}

// SOCDEnabled reports whether SOCD cleaning is on
func (k *Keyboard) SOCDEnabled() bool {
	return k.socdEnabled
}

// PostInit runs once after hardware init
func (k *Keyboard) PostInit() {
	k.lighting.Init()
}

// ProcessRecord runs for every key edge. Returns false when the event was
// fully handled and the host must skip default processing.
func (k *Keyboard) ProcessRecord(ev KeyEvent) bool {
	if k.socdEnabled {
		for _, c := range k.socd {
			res := c.Process(ev)
			if res.HasSync {
				if res.Sync.Pressed {
					k.host.RegisterCode(res.Sync.Key)
				} else {
					k.host.UnregisterCode(res.Sync.Key)
				}
				active, _ := c.ActiveKey()
				RecordTrace(EvtSOCD, res.Sync.Key, boolToU32(res.Sync.Pressed), uint32(active))
			}
			if !res.Propagate {
				RecordTrace(EvtSOCDDrop, ev.Key, boolToU32(ev.Pressed), 0)
				return false
			}
		}
	}

	return k.lighting.ProcessKey(ev)
}

// RenderIndicators runs once per LED frame for [ledMin, ledMax)
func (k *Keyboard) RenderIndicators(ledMin, ledMax uint8) bool {
	return k.lighting.RenderIndicators(ledMin, ledMax)
}

// EncoderUpdate runs once per encoder detent
func (k *Keyboard) EncoderUpdate(index uint8, clockwise bool) bool {
	return k.lighting.EncoderUpdate(index, clockwise)
}

// Global singleton the firmware target dispatches hooks to.
var keyboard *Keyboard

// SetKeyboard is called by target-specific code to register its keyboard.
func SetKeyboard(kb *Keyboard) {
	keyboard = kb
}

// MustKeyboard returns the configured keyboard or panics if missing.
func MustKeyboard() *Keyboard {
	if keyboard == nil {
		panic("keyboard not configured")
	}
	return keyboard
}
