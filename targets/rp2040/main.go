//go:build rp2040

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/encoders"

	"keyglow/core"
)

const (
	stripPin    = machine.GPIO16
	encoderPinA = machine.GPIO14
	encoderPinB = machine.GPIO15

	frameInterval = 16 * time.Millisecond
)

var padKeys = []directKey{
	{pin: machine.GPIO2, kc: core.KC_W},
	{pin: machine.GPIO3, kc: core.KC_A},
	{pin: machine.GPIO4, kc: core.KC_S},
	{pin: machine.GPIO5, kc: core.KC_D},
	{pin: machine.GPIO6, kc: core.KC_SPC},
	{pin: machine.GPIO7, kc: core.KC_LCTL},
	{pin: machine.GPIO8, kc: core.KC_LALT},
	{pin: machine.GPIO9, kc: core.KC_LSFT},
	{pin: machine.GPIO10, kc: core.KC_FN},
	{pin: machine.GPIO13, kc: core.KC_MUTE}, // encoder switch
}

// padLayout is one LED per switch, then three LEDs per side bar
func padLayout() *core.Layout {
	keys := map[core.Keycode]uint8{
		core.KC_W: 0, core.KC_A: 1, core.KC_S: 2, core.KC_D: 3, core.KC_SPC: 4,
		core.KC_LCTL: 5, core.KC_LALT: 6, core.KC_LSFT: 7, core.KC_FN: 8,
	}
	left := []uint8{9, 10, 11}
	right := []uint8{12, 13, 14}
	capsRow := []core.Keycode{core.KC_A, core.KC_S, core.KC_D}
	return core.NewLayout("wasd_pad", 15, keys, left, right, capsRow)
}

func main() {
	// Clear any watchdog state left from a previous run
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	InitConsole()

	for i := range padKeys {
		padKeys[i].pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	enc := encoders.NewQuadratureViaInterrupt(encoderPinA, encoderPinB)
	enc.Configure(encoders.QuadratureConfig{Precision: 4})

	layout := padLayout()
	host := newPadHost()
	strip := newStripEffect(stripPin, layout.LEDCount, loadEffect())

	core.SetKeyboard(core.NewKeyboard(host, strip, layout, core.DefaultPalette, core.DefaultConfig()))
	kb := core.MustKeyboard()
	kb.PostInit()

	lastPos := enc.Position()
	nextFrame := time.Now()

	for {
		// A panic in a hook must not take the keyboard down
		func() {
			defer func() {
				if r := recover(); r != nil {
					core.DebugPrintln("[MAIN] recovered from panic")
				}
			}()

			scan(padKeys, Millis(), func(ev core.KeyEvent) {
				if !kb.ProcessRecord(ev) {
					return
				}
				if ev.Pressed {
					host.RegisterCode(ev.Key)
				} else {
					host.UnregisterCode(ev.Key)
				}
			})

			for pos := enc.Position(); pos != lastPos; {
				cw := pos > lastPos
				if cw {
					lastPos++
				} else {
					lastPos--
				}
				kb.EncoderUpdate(0, cw)
			}

			if now := time.Now(); !now.Before(nextFrame) {
				nextFrame = now.Add(frameInterval)
				if err := strip.Render(kb); err != nil {
					core.DebugPrintln("[MAIN] strip write failed")
				}
			}
		}()

		time.Sleep(500 * time.Microsecond)
	}
}
