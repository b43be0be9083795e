//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"keyglow/core"
)

// Effect step sizes
const (
	hueStep   = 8
	satStep   = 16
	valStep   = 16
	speedStep = 16

	effectModes = 4
)

// stripEffect is the built-in effect on a ws2812 chain: a solid fill of
// the effect color, then the indicator hook, then one strip write.
type stripEffect struct {
	dev ws2812.Device
	buf []color.RGBA

	enabled bool
	mode    uint8
	speed   uint8
	hsv     core.HSV
}

func newStripEffect(pin machine.Pin, count uint8, stored storedEffect) *stripEffect {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &stripEffect{
		dev:     ws2812.New(pin),
		buf:     make([]color.RGBA, count),
		enabled: true,
		mode:    stored.Mode,
		speed:   stored.Speed,
		hsv:     stored.HSV,
	}
}

func (s *stripEffect) Enabled() bool { return s.enabled }

func (s *stripEffect) Toggle() { s.enabled = !s.enabled }

func (s *stripEffect) Flags() core.LEDFlags { return core.LED_FLAG_ALL }

func (s *stripEffect) Mode() uint8 { return s.mode }

func (s *stripEffect) Speed() uint8 { return s.speed }

func (s *stripEffect) HSV() core.HSV { return s.hsv }

func (s *stripEffect) SetHSVNoEEPROM(c core.HSV) { s.hsv = c }

func (s *stripEffect) StepMode(forward bool) {
	if forward {
		s.mode = (s.mode + 1) % effectModes
	} else {
		s.mode = (s.mode + effectModes - 1) % effectModes
	}
}

func (s *stripEffect) StepSpeed(up bool) {
	if up {
		s.speed = core.AddSat8(s.speed, speedStep)
	} else {
		s.speed = core.SubSat8(s.speed, speedStep)
	}
}

func (s *stripEffect) StepHue(up bool) { s.hsv = s.hsv.Adjust(up, hueStep, 0, 0) }

func (s *stripEffect) StepSat(up bool) { s.hsv = s.hsv.Adjust(up, 0, satStep, 0) }

func (s *stripEffect) StepVal(up bool) { s.hsv = s.hsv.Adjust(up, 0, 0, valStep) }

func (s *stripEffect) Commit(mode, speed uint8, c core.HSV) {
	saveEffect(storedEffect{Mode: mode, Speed: speed, HSV: c})
}

func (s *stripEffect) SetColor(index uint8, c core.RGB) {
	if int(index) < len(s.buf) {
		s.buf[index] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	}
}

// Render draws one frame through kb's indicator hook and pushes it out
func (s *stripEffect) Render(kb *core.Keyboard) error {
	fill := color.RGBA{A: 0xFF}
	if s.enabled {
		c := s.hsv.ToRGB()
		fill = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	}
	for i := range s.buf {
		s.buf[i] = fill
	}
	if s.enabled {
		kb.RenderIndicators(0, uint8(len(s.buf)))
	}
	return s.dev.WriteColors(s.buf)
}
