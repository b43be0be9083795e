package sim

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"keyglow/core"
)

var testStored = Stored{Mode: 0, Speed: 128, HSV: core.HSV{H: 0, S: 255, V: 255}}

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	board := NewBoard(core.GMMKProANSI(), testStored)
	return NewRunner(board, core.DefaultPalette, core.DefaultConfig(), out), out
}

func run(t *testing.T, r *Runner, script string) {
	t.Helper()
	if err := r.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Script failed: %v", err)
	}
}

func ledOf(t *testing.T, r *Runner, kc core.Keycode) core.RGB {
	t.Helper()
	idx, ok := r.Board.Layout().LED(kc)
	if !ok {
		t.Fatalf("No LED under %s", core.KeycodeString(kc))
	}
	return r.Board.LEDs()[idx]
}

func TestPowerUpSideOnly(t *testing.T) {
	r, _ := newTestRunner(t)
	run(t, r, "frame")

	red := testStored.HSV.ToRGB()
	layout := r.Board.Layout()
	for _, idx := range layout.LeftSide {
		if r.Board.LEDs()[idx] != red {
			t.Errorf("Expected side LED %d lit with the effect, got %+v", idx, r.Board.LEDs()[idx])
		}
	}
	if c := ledOf(t, r, core.KC_A); c != core.RGB_BLACK {
		t.Errorf("Expected key LEDs dark in side-only mode, got %+v", c)
	}
}

func TestUserStaticChord(t *testing.T) {
	r, out := newTestRunner(t)
	run(t, r, `
		mods LCTL
		tap MUTE
		mods NONE
		state
	`)

	l := r.Keyboard.Lighting()
	if l.Mode() != core.ModeUserStatic {
		t.Fatalf("Expected user static mode, got %s", l.Mode())
	}
	if r.Board.HSV() != core.HSV_BLACK {
		t.Errorf("Expected effect blacked out, got %+v", r.Board.HSV())
	}
	if len(r.Board.Report()) != 0 || len(r.Board.Taps()) != 0 {
		t.Errorf("Chord press must not reach the host, report=%v taps=%v", r.Board.Report(), r.Board.Taps())
	}

	user := core.DefaultConfig().UserHSV.ToRGB()
	idx := r.Board.Layout().RightSide[0]
	if r.Board.LEDs()[idx] != user {
		t.Errorf("Expected side bar in user color %+v, got %+v", user, r.Board.LEDs()[idx])
	}
	if !strings.Contains(out.String(), "mode=user_static") {
		t.Errorf("Expected state dump to name the mode, got %q", out.String())
	}

	// Back to the effect with the saved color
	run(t, r, "mods LCTL\ntap MUTE")
	if l.Mode() != core.ModeEffectEverywhere || r.Board.HSV() != testStored.HSV {
		t.Errorf("Expected effect everywhere with %+v, got %s %+v", testStored.HSV, l.Mode(), r.Board.HSV())
	}
}

func TestSOCDThroughReport(t *testing.T) {
	r, _ := newTestRunner(t)

	run(t, r, "press W\npress S")
	if got := r.Board.Report(); len(got) != 1 || got[0] != core.KC_S {
		t.Fatalf("Expected only S held, got %v", got)
	}

	run(t, r, "release S")
	if got := r.Board.Report(); len(got) != 1 || got[0] != core.KC_W {
		t.Fatalf("Expected W re-pressed, got %v", got)
	}

	run(t, r, "release W\nsocd off\npress A\npress D")
	if got := r.Board.Report(); len(got) != 2 {
		t.Errorf("Expected both keys with cleaning off, got %v", got)
	}
}

func TestEncoder(t *testing.T) {
	r, _ := newTestRunner(t)

	run(t, r, "cw\nccw 2")
	taps := r.Board.Taps()
	if len(taps) != 3 || taps[0] != core.KC_VOLU || taps[2] != core.KC_VOLD {
		t.Errorf("Expected volume taps, got %v", taps)
	}

	run(t, r, "mods LCTL\ncw 2")
	if h := r.Board.HSV().H; h != 2*HueStep {
		t.Errorf("Expected hue %d, got %d", 2*HueStep, h)
	}

	run(t, r, "mods LSFT\ncw")
	if r.Board.Mode() != 1 {
		t.Errorf("Expected next effect mode, got %d", r.Board.Mode())
	}

	if _, writes := r.Board.Stored(); writes != 0 {
		t.Errorf("Encoder must not persist, got %d writes", writes)
	}
	run(t, r, "mods RCTL\ntap MUTE")
	stored, writes := r.Board.Stored()
	if writes != 1 || stored.Mode != 1 || stored.HSV.H != 2*HueStep {
		t.Errorf("Expected one save of the adjusted effect, got %+v (%d)", stored, writes)
	}
}

func TestLayerOverlay(t *testing.T) {
	r, _ := newTestRunner(t)

	run(t, r, "layer 1\nframe\nframe")
	if c := ledOf(t, r, core.KC_W); c != core.RGB_GOLD {
		t.Errorf("Expected W gold, got %+v", c)
	}
	if c := ledOf(t, r, core.KC_P); c != core.RGB_WHITE {
		t.Errorf("Expected P white with num lock off, got %+v", c)
	}
	if c := ledOf(t, r, core.KC_Q); c != core.RGB_BLACK {
		t.Errorf("Expected unbound key dark, got %+v", c)
	}

	run(t, r, "lock num on\nframe")
	if c := ledOf(t, r, core.KC_P); c != core.RGB_RED {
		t.Errorf("Expected P red with num lock on, got %+v", c)
	}

	run(t, r, "layer 0\nframe")
	if _, on := r.Keyboard.Lighting().Overlay(); on {
		t.Error("Expected overlay to end on the base layer")
	}
	if r.Board.HSV() != testStored.HSV {
		t.Errorf("Expected effect color restored, got %+v", r.Board.HSV())
	}
}

func TestCapsLockRow(t *testing.T) {
	r, _ := newTestRunner(t)
	run(t, r, "lock caps on\nframe")

	if c := ledOf(t, r, core.KC_L); c != core.DefaultConfig().LockAlert {
		t.Errorf("Expected caps row alert color, got %+v", c)
	}
}

func TestToggleDisablesFrame(t *testing.T) {
	r, _ := newTestRunner(t)
	run(t, r, "mods LSFT\ntap MUTE\nframe")

	if r.Board.Enabled() {
		t.Fatal("Expected LED system off")
	}
	for i, c := range r.Board.LEDs() {
		if c != core.RGB_BLACK {
			t.Fatalf("Expected dark frame, LED %d is %+v", i, c)
		}
	}
}

func TestScriptErrors(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.Run(strings.NewReader("# setup\npress W\nexplode\n"))
	if !errors.Is(err, ErrUnknownCommand) || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Expected unknown command on line 3, got %v", err)
	}

	for _, line := range []string{"press", "press NOPE", "layer x", "lock caps maybe", "cw 0", "mods HYPER"} {
		if err := r.Exec(line); err == nil {
			t.Errorf("Expected error for %q", line)
		}
	}
}

func TestPreview(t *testing.T) {
	r, _ := newTestRunner(t)
	r.Board.Frame(r.Keyboard)

	out := Preview(r.Board)
	if lines := strings.Count(out, "\n") + 1; lines != 8 {
		t.Errorf("Expected 8 preview lines, got %d", lines)
	}
	for _, label := range []string{"ESC", "F12", "SPC"} {
		if !strings.Contains(out, label) {
			t.Errorf("Expected %s in preview", label)
		}
	}
}
