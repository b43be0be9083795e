package core

// ChordBindings selects the modifiers that turn a trigger-key press into a
// lighting command. Checked in field order; the first held binding wins.
type ChordBindings struct {
	UserStatic ModMask // toggle user static color <-> effect everywhere
	SideOnly   ModMask // toggle side-only effect <-> effect everywhere
	Toggle     ModMask // LED system on/off
	Save       ModMask // persist effect mode, speed and color
}

// EncoderBindings selects what the encoder adjusts for each held modifier.
// Holding Hue and Sat together adjusts value.
type EncoderBindings struct {
	Hue       ModMask
	Sat       ModMask
	ModeStep  ModMask
	SpeedStep ModMask
}

// SOCDAxis binds an opposing key pair to a resolution
type SOCDAxis struct {
	Keys       [2]Keycode
	Resolution SOCDResolution
}

// Config is the firmware profile applied at post-init
type Config struct {
	DefaultMode LightingMode
	UserHSV     HSV

	// User color step sizes per encoder detent
	HueStep uint8
	SatStep uint8
	ValStep uint8

	TriggerKey Keycode
	LockAlert  RGB

	Chords  ChordBindings
	Encoder EncoderBindings
	SOCD    []SOCDAxis
}

// DefaultConfig returns the stock profile: side-only effect, teal user color,
// chords on the encoder click and W/S plus A/D last-input cleaning.
func DefaultConfig() Config {
	return Config{
		DefaultMode: ModeSideOnly,
		UserHSV:     HSV{H: 115, S: 255, V: 255},
		HueStep:     8,
		SatStep:     17,
		ValStep:     17,
		TriggerKey:  KC_MUTE,
		LockAlert:   RGB_RED,
		Chords: ChordBindings{
			UserStatic: MOD_LCTL,
			SideOnly:   MOD_LALT,
			Toggle:     MOD_LSFT,
			Save:       MOD_RCTL,
		},
		Encoder: EncoderBindings{
			Hue:       MOD_LCTL,
			Sat:       MOD_LALT,
			ModeStep:  MOD_LSFT,
			SpeedStep: MOD_RSFT,
		},
		SOCD: []SOCDAxis{
			{Keys: [2]Keycode{KC_W, KC_S}, Resolution: SOCD_LAST},
			{Keys: [2]Keycode{KC_A, KC_D}, Resolution: SOCD_LAST},
		},
	}
}
