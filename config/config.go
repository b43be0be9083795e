// Package config loads a keyboard profile from JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"keyglow/core"
)

var (
	ErrUnknownKey        = errors.New("unknown keycode")
	ErrUnknownModifier   = errors.New("unknown modifier")
	ErrUnknownMode       = errors.New("unknown lighting mode")
	ErrUnknownResolution = errors.New("unknown SOCD resolution")
	ErrColorBindings     = errors.New("encoder hue and sat modifiers must be set and disjoint")
)

// HSVConfig is an HSV triple in JSON form
type HSVConfig struct {
	H uint8 `json:"h"`
	S uint8 `json:"s"`
	V uint8 `json:"v"`
}

// RGBConfig is an RGB triple in JSON form
type RGBConfig struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ChordConfig names the chord modifiers ("LCTL", "LCTL+LALT", "NONE")
type ChordConfig struct {
	UserStatic string `json:"user_static"`
	SideOnly   string `json:"side_only"`
	Toggle     string `json:"toggle"`
	Save       string `json:"save"`
}

// EncoderConfig names the encoder modifiers
type EncoderConfig struct {
	Hue       string `json:"hue"`
	Sat       string `json:"sat"`
	ModeStep  string `json:"mode_step"`
	SpeedStep string `json:"speed_step"`
}

// SOCDConfig is one opposing key pair
type SOCDConfig struct {
	Keys       [2]string `json:"keys"`
	Resolution string    `json:"resolution"`
}

// ProfileConfig is the on-disk profile. Missing fields take the stock defaults.
type ProfileConfig struct {
	DefaultMode string        `json:"default_mode"`
	UserHSV     *HSVConfig    `json:"user_hsv"`
	HueStep     uint8         `json:"hue_step"`
	SatStep     uint8         `json:"sat_step"`
	ValStep     uint8         `json:"val_step"`
	TriggerKey  string        `json:"trigger_key"`
	LockAlert   *RGBConfig    `json:"lock_alert"`
	Chords      ChordConfig   `json:"chords"`
	Encoder     EncoderConfig `json:"encoder"`
	SOCD        []SOCDConfig  `json:"socd"`
}

// LoadConfig parses a JSON profile and returns the keyboard configuration
func LoadConfig(jsonData []byte) (*core.Config, error) {
	var profile ProfileConfig

	if err := json.Unmarshal(jsonData, &profile); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	applyDefaults(&profile)

	return profile.Resolve()
}

// applyDefaults fills in missing profile values from the stock profile
func applyDefaults(p *ProfileConfig) {
	def := core.DefaultConfig()

	if p.DefaultMode == "" {
		p.DefaultMode = def.DefaultMode.String()
	}
	if p.UserHSV == nil {
		p.UserHSV = &HSVConfig{H: def.UserHSV.H, S: def.UserHSV.S, V: def.UserHSV.V}
	}
	if p.HueStep == 0 {
		p.HueStep = def.HueStep
	}
	if p.SatStep == 0 {
		p.SatStep = def.SatStep
	}
	if p.ValStep == 0 {
		p.ValStep = def.ValStep
	}
	if p.TriggerKey == "" {
		p.TriggerKey = core.KeycodeString(def.TriggerKey)
	}
	if p.LockAlert == nil {
		p.LockAlert = &RGBConfig{R: def.LockAlert.R, G: def.LockAlert.G, B: def.LockAlert.B}
	}

	defaultMods(&p.Chords.UserStatic, def.Chords.UserStatic)
	defaultMods(&p.Chords.SideOnly, def.Chords.SideOnly)
	defaultMods(&p.Chords.Toggle, def.Chords.Toggle)
	defaultMods(&p.Chords.Save, def.Chords.Save)
	defaultMods(&p.Encoder.Hue, def.Encoder.Hue)
	defaultMods(&p.Encoder.Sat, def.Encoder.Sat)
	defaultMods(&p.Encoder.ModeStep, def.Encoder.ModeStep)
	defaultMods(&p.Encoder.SpeedStep, def.Encoder.SpeedStep)

	// A nil list means "not configured"; an explicit [] disables cleaning
	if p.SOCD == nil {
		for _, axis := range def.SOCD {
			p.SOCD = append(p.SOCD, SOCDConfig{
				Keys:       [2]string{core.KeycodeString(axis.Keys[0]), core.KeycodeString(axis.Keys[1])},
				Resolution: axis.Resolution.String(),
			})
		}
	}
	for i := range p.SOCD {
		if p.SOCD[i].Resolution == "" {
			p.SOCD[i].Resolution = core.SOCD_LAST.String()
		}
	}
}

func defaultMods(field *string, def core.ModMask) {
	if *field == "" {
		*field = core.ModMaskString(def)
	}
}

// Resolve converts names to keyboard values. Call after defaults are applied.
func (p *ProfileConfig) Resolve() (*core.Config, error) {
	cfg := core.DefaultConfig()

	mode, ok := core.ParseLightingMode(p.DefaultMode)
	if !ok {
		return nil, fmt.Errorf("default_mode %q: %w", p.DefaultMode, ErrUnknownMode)
	}
	cfg.DefaultMode = mode

	if p.UserHSV != nil {
		cfg.UserHSV = core.HSV{H: p.UserHSV.H, S: p.UserHSV.S, V: p.UserHSV.V}
	}
	if p.LockAlert != nil {
		cfg.LockAlert = core.RGB{R: p.LockAlert.R, G: p.LockAlert.G, B: p.LockAlert.B}
	}
	cfg.HueStep, cfg.SatStep, cfg.ValStep = p.HueStep, p.SatStep, p.ValStep

	trigger, ok := core.ParseKeycode(p.TriggerKey)
	if !ok {
		return nil, fmt.Errorf("trigger_key %q: %w", p.TriggerKey, ErrUnknownKey)
	}
	cfg.TriggerKey = trigger

	mods := []struct {
		name string
		src  string
		dst  *core.ModMask
	}{
		{"chords.user_static", p.Chords.UserStatic, &cfg.Chords.UserStatic},
		{"chords.side_only", p.Chords.SideOnly, &cfg.Chords.SideOnly},
		{"chords.toggle", p.Chords.Toggle, &cfg.Chords.Toggle},
		{"chords.save", p.Chords.Save, &cfg.Chords.Save},
		{"encoder.hue", p.Encoder.Hue, &cfg.Encoder.Hue},
		{"encoder.sat", p.Encoder.Sat, &cfg.Encoder.Sat},
		{"encoder.mode_step", p.Encoder.ModeStep, &cfg.Encoder.ModeStep},
		{"encoder.speed_step", p.Encoder.SpeedStep, &cfg.Encoder.SpeedStep},
	}
	for _, m := range mods {
		v, ok := core.ParseModMask(m.src)
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", m.name, m.src, ErrUnknownModifier)
		}
		*m.dst = v
	}

	// Value adjustment is "hue and sat held together", so both must be distinct
	if cfg.Encoder.Hue == 0 || cfg.Encoder.Sat == 0 || cfg.Encoder.Hue&cfg.Encoder.Sat != 0 {
		return nil, ErrColorBindings
	}

	cfg.SOCD = nil
	for i, axis := range p.SOCD {
		var keys [2]core.Keycode
		for j, name := range axis.Keys {
			kc, ok := core.ParseKeycode(name)
			if !ok {
				return nil, fmt.Errorf("socd[%d].keys[%d] %q: %w", i, j, name, ErrUnknownKey)
			}
			keys[j] = kc
		}
		res, ok := core.ParseSOCDResolution(axis.Resolution)
		if !ok {
			return nil, fmt.Errorf("socd[%d].resolution %q: %w", i, axis.Resolution, ErrUnknownResolution)
		}
		cfg.SOCD = append(cfg.SOCD, core.SOCDAxis{Keys: keys, Resolution: res})
	}

	return &cfg, nil
}

// FromConfig converts a keyboard configuration back to its profile form
func FromConfig(cfg core.Config) ProfileConfig {
	p := ProfileConfig{
		DefaultMode: cfg.DefaultMode.String(),
		UserHSV:     &HSVConfig{H: cfg.UserHSV.H, S: cfg.UserHSV.S, V: cfg.UserHSV.V},
		HueStep:     cfg.HueStep,
		SatStep:     cfg.SatStep,
		ValStep:     cfg.ValStep,
		TriggerKey:  core.KeycodeString(cfg.TriggerKey),
		LockAlert:   &RGBConfig{R: cfg.LockAlert.R, G: cfg.LockAlert.G, B: cfg.LockAlert.B},
		Chords: ChordConfig{
			UserStatic: core.ModMaskString(cfg.Chords.UserStatic),
			SideOnly:   core.ModMaskString(cfg.Chords.SideOnly),
			Toggle:     core.ModMaskString(cfg.Chords.Toggle),
			Save:       core.ModMaskString(cfg.Chords.Save),
		},
		Encoder: EncoderConfig{
			Hue:       core.ModMaskString(cfg.Encoder.Hue),
			Sat:       core.ModMaskString(cfg.Encoder.Sat),
			ModeStep:  core.ModMaskString(cfg.Encoder.ModeStep),
			SpeedStep: core.ModMaskString(cfg.Encoder.SpeedStep),
		},
		SOCD: []SOCDConfig{},
	}
	for _, axis := range cfg.SOCD {
		p.SOCD = append(p.SOCD, SOCDConfig{
			Keys:       [2]string{core.KeycodeString(axis.Keys[0]), core.KeycodeString(axis.Keys[1])},
			Resolution: axis.Resolution.String(),
		})
	}
	return p
}

// MarshalProfile renders cfg as indented profile JSON
func MarshalProfile(cfg core.Config) ([]byte, error) {
	return json.MarshalIndent(FromConfig(cfg), "", "  ")
}
