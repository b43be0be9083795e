package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"keyglow/core"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("bad arguments")
)

// Runner drives a keyboard from a line-oriented script:
//
//	press KEY | release KEY | tap KEY
//	mods LCTL+LALT | mods NONE
//	layer N
//	lock caps|num|scroll on|off
//	cw [N] | ccw [N]
//	socd on|off
//	frame | state
type Runner struct {
	Board    *Board
	Keyboard *core.Keyboard

	out   io.Writer
	clock uint16
}

// NewRunner wires a board to a fresh keyboard and runs post-init
func NewRunner(board *Board, palette []core.IndicatorEntry, cfg core.Config, out io.Writer) *Runner {
	kb := core.NewKeyboard(board, board, board.Layout(), palette, cfg)
	kb.PostInit()
	return &Runner{Board: board, Keyboard: kb, out: out}
}

// Run executes every line of r and stops at the first error
func (r *Runner) Run(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := r.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// Exec runs one script line
func (r *Runner) Exec(line string) error {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return nil
	}
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("%q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "press", "release", "tap":
		if len(args) != 1 {
			return fmt.Errorf("%s: %w", cmd, ErrUsage)
		}
		kc, ok := core.ParseKeycode(args[0])
		if !ok {
			return fmt.Errorf("%s: unknown key %q", cmd, args[0])
		}
		if cmd != "release" {
			r.Press(kc)
		}
		if cmd != "press" {
			r.Release(kc)
		}

	case "mods":
		if len(args) != 1 {
			return fmt.Errorf("mods: %w", ErrUsage)
		}
		m, ok := core.ParseModMask(args[0])
		if !ok {
			return fmt.Errorf("mods: unknown modifier in %q", args[0])
		}
		r.Board.SetMods(m)

	case "layer":
		if len(args) != 1 {
			return fmt.Errorf("layer: %w", ErrUsage)
		}
		n, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return fmt.Errorf("layer: %w", err)
		}
		r.Board.SetLayer(uint8(n))

	case "lock":
		if len(args) != 2 {
			return fmt.Errorf("lock: %w", ErrUsage)
		}
		bits, ok := lockNames[strings.ToLower(args[0])]
		if !ok {
			return fmt.Errorf("lock: unknown lock %q", args[0])
		}
		on, err := parseOnOff(args[1])
		if err != nil {
			return fmt.Errorf("lock: %w", err)
		}
		r.Board.SetLock(bits, on)

	case "cw", "ccw":
		n := 1
		if len(args) == 1 {
			if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
				return fmt.Errorf("%s: %w", cmd, ErrUsage)
			}
		}
		for i := 0; i < n; i++ {
			r.Keyboard.EncoderUpdate(0, cmd == "cw")
		}

	case "socd":
		if len(args) != 1 {
			return fmt.Errorf("socd: %w", ErrUsage)
		}
		on, err := parseOnOff(args[0])
		if err != nil {
			return fmt.Errorf("socd: %w", err)
		}
		r.Keyboard.SetSOCDEnabled(on)

	case "frame":
		r.Board.Frame(r.Keyboard)
		fmt.Fprintln(r.out, Preview(r.Board))

	case "state":
		r.Board.Frame(r.Keyboard)
		fmt.Fprint(r.out, r.State())

	default:
		return fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}
	return nil
}

// Press sends a key-down edge through the keyboard hooks. Keys the hooks
// do not consume go into the report.
func (r *Runner) Press(kc core.Keycode) {
	r.clock++
	if r.Keyboard.ProcessRecord(core.KeyEvent{Key: kc, Pressed: true, Time: r.clock}) {
		r.Board.RegisterCode(kc)
	}
}

// Release sends a key-up edge through the keyboard hooks
func (r *Runner) Release(kc core.Keycode) {
	r.clock++
	if r.Keyboard.ProcessRecord(core.KeyEvent{Key: kc, Pressed: false, Time: r.clock}) {
		r.Board.UnregisterCode(kc)
	}
}

// State renders the controller and board state as text
func (r *Runner) State() string {
	var sb strings.Builder
	l := r.Keyboard.Lighting()
	b := r.Board

	overlay := "off"
	if c, on := l.Overlay(); on {
		overlay = hsvText(c)
	}
	fmt.Fprintf(&sb, "mode=%s user=%s saved=%s overlay=%s\n",
		l.Mode(), hsvText(l.UserHSV()), hsvText(l.SavedHSV()), overlay)

	fmt.Fprintf(&sb, "effect enabled=%t mode=%s speed=%d hsv=%s\n",
		b.Enabled(), effectName(b.Mode()), b.Speed(), hsvText(b.HSV()))

	keys := make([]string, 0, len(b.report))
	for _, kc := range b.report {
		keys = append(keys, core.KeycodeString(kc))
	}
	fmt.Fprintf(&sb, "report=[%s] mods=%s layer=%d\n",
		strings.Join(keys, " "), core.ModMaskString(b.Mods()), b.HighestLayer())

	taps := make([]string, 0, len(b.taps))
	for _, kc := range b.taps {
		taps = append(taps, core.KeycodeString(kc))
	}
	fmt.Fprintf(&sb, "taps=[%s]\n", strings.Join(taps, " "))

	stored, commits := b.Stored()
	fmt.Fprintf(&sb, "stored mode=%s speed=%d hsv=%s writes=%d\n",
		effectName(stored.Mode), stored.Speed, hsvText(stored.HSV), commits)
	return sb.String()
}

var lockNames = map[string]core.LEDState{
	"num":    core.LED_NUM_LOCK,
	"caps":   core.LED_CAPS_LOCK,
	"scroll": core.LED_SCROLL_LOCK,
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "1", "true":
		return true, nil
	case "off", "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("%q: %w", s, ErrUsage)
}

func effectName(mode uint8) string {
	if int(mode) < len(EffectNames) {
		return EffectNames[mode]
	}
	return strconv.Itoa(int(mode))
}

func hsvText(c core.HSV) string {
	return fmt.Sprintf("%d/%d/%d", c.H, c.S, c.V)
}
