package core

import (
	"math/rand"
	"testing"
)

// report mirrors what reaches the host's outgoing report
type report map[Keycode]bool

func (r report) apply(ev KeyEvent, res SOCDResult) {
	if res.HasSync {
		r[res.Sync.Key] = res.Sync.Pressed
	}
	if res.Propagate {
		r[ev.Key] = ev.Pressed
	}
}

func TestSOCDLastScenario(t *testing.T) {
	c := NewSOCDCleaner(KC_A, KC_D, SOCD_LAST)
	r := report{}

	steps := []struct {
		ev        KeyEvent
		active    SOCDActive
		propagate bool
		sync      *KeyChange
	}{
		{press(KC_A), SOCDKey0, true, nil},
		{press(KC_D), SOCDKey1, true, &KeyChange{KC_A, false}},
		{release(KC_D), SOCDKey0, true, &KeyChange{KC_A, true}},
		{release(KC_A), SOCDNone, true, nil},
	}

	for i, s := range steps {
		res := c.Process(s.ev)
		r.apply(s.ev, res)

		if res.Propagate != s.propagate {
			t.Errorf("Step %d: expected propagate=%v, got %v", i, s.propagate, res.Propagate)
		}
		if c.Active() != s.active {
			t.Errorf("Step %d: expected active %d, got %d", i, s.active, c.Active())
		}
		if s.sync == nil && res.HasSync {
			t.Errorf("Step %d: unexpected sync %+v", i, res.Sync)
		}
		if s.sync != nil && (!res.HasSync || res.Sync != *s.sync) {
			t.Errorf("Step %d: expected sync %+v, got %+v (has=%v)", i, *s.sync, res.Sync, res.HasSync)
		}
	}

	if r[KC_A] || r[KC_D] {
		t.Errorf("Expected empty report at the end, got %v", r)
	}
}

func TestSOCDLastReactivatesFirstKey(t *testing.T) {
	c := NewSOCDCleaner(KC_W, KC_S, SOCD_LAST)
	r := report{}

	for _, ev := range []KeyEvent{press(KC_W), press(KC_S), release(KC_S)} {
		r.apply(ev, c.Process(ev))
	}

	if kc, ok := c.ActiveKey(); !ok || kc != KC_W {
		t.Errorf("Expected KC_W active, got %v (ok=%v)", kc, ok)
	}
	if !r[KC_W] || r[KC_S] {
		t.Errorf("Expected only KC_W in report, got %v", r)
	}
}

func TestSOCDLastRepeatOfActiveKeyPropagates(t *testing.T) {
	c := NewSOCDCleaner(KC_W, KC_S, SOCD_LAST)
	c.Process(press(KC_W))
	c.Process(press(KC_S))

	res := c.Process(press(KC_S))
	if !res.Propagate {
		t.Error("Repeat of the active key must not be suppressed")
	}
	if c.Active() != SOCDKey1 {
		t.Errorf("Expected KC_S to stay active, got %d", c.Active())
	}
}

func TestSOCDAtMostOneKeyInReport(t *testing.T) {
	resolutions := []SOCDResolution{SOCD_LAST, SOCD_NEUTRAL, SOCD_0_WINS, SOCD_1_WINS}
	keys := []Keycode{KC_A, KC_D, KC_Q}
	rng := rand.New(rand.NewSource(42))

	for _, resolution := range resolutions {
		c := NewSOCDCleaner(KC_A, KC_D, resolution)
		r := report{}

		for i := 0; i < 2000; i++ {
			ev := KeyEvent{Key: keys[rng.Intn(len(keys))], Pressed: rng.Intn(2) == 0}
			r.apply(ev, c.Process(ev))

			if r[KC_A] && r[KC_D] {
				t.Fatalf("%s step %d: both keys in report", resolution, i)
			}

			// The report must agree with the active variant
			kc, ok := c.ActiveKey()
			if ok != (r[KC_A] || r[KC_D]) || (ok && !r[kc]) {
				t.Fatalf("%s step %d: active=%d but report=%v", resolution, i, c.Active(), r)
			}
		}
	}
}

func TestSOCDNeutral(t *testing.T) {
	c := NewSOCDCleaner(KC_A, KC_D, SOCD_NEUTRAL)

	c.Process(press(KC_A))
	res := c.Process(press(KC_D))
	if res.Propagate {
		t.Error("Neutral: second press must be dropped")
	}
	if !res.HasSync || res.Sync != (KeyChange{KC_A, false}) {
		t.Errorf("Neutral: expected KC_A released, got %+v", res.Sync)
	}
	if c.Active() != SOCDNone {
		t.Errorf("Neutral: expected no active key, got %d", c.Active())
	}

	res = c.Process(release(KC_A))
	if res.Propagate || res.Sync != (KeyChange{KC_D, true}) {
		t.Errorf("Neutral: expected KC_D re-pressed and release dropped, got %+v", res)
	}
	if c.Active() != SOCDKey1 {
		t.Errorf("Neutral: expected KC_D active, got %d", c.Active())
	}
}

func TestSOCDWinnerPolicies(t *testing.T) {
	c := NewSOCDCleaner(KC_A, KC_D, SOCD_0_WINS)

	c.Process(press(KC_A))
	if res := c.Process(press(KC_D)); res.Propagate || res.HasSync {
		t.Errorf("0 wins: loser press must be dropped without sync, got %+v", res)
	}
	if c.Active() != SOCDKey0 {
		t.Errorf("0 wins: expected KC_A active, got %d", c.Active())
	}

	res := c.Process(release(KC_A))
	if !res.Propagate || res.Sync != (KeyChange{KC_D, true}) {
		t.Errorf("0 wins: winner release must re-press loser, got %+v", res)
	}

	c = NewSOCDCleaner(KC_A, KC_D, SOCD_1_WINS)
	c.Process(press(KC_A))
	res = c.Process(press(KC_D))
	if !res.Propagate || res.Sync != (KeyChange{KC_A, false}) {
		t.Errorf("1 wins: winner press must release loser, got %+v", res)
	}
}

func TestSOCDPassThrough(t *testing.T) {
	c := NewSOCDCleaner(KC_A, KC_D, SOCD_LAST)

	if res := c.Process(press(KC_Q)); !res.Propagate || res.HasSync {
		t.Errorf("Unrelated key must pass untouched, got %+v", res)
	}

	// Release without a prior press
	if res := c.Process(release(KC_D)); !res.Propagate || res.HasSync {
		t.Errorf("Stray release must pass untouched, got %+v", res)
	}
	if c.Held(1) || c.Active() != SOCDNone {
		t.Error("Stray release must not change state")
	}

	off := NewSOCDCleaner(KC_A, KC_D, SOCD_OFF)
	off.Process(press(KC_A))
	if res := off.Process(press(KC_D)); !res.Propagate || res.HasSync {
		t.Errorf("Off: expected pass-through, got %+v", res)
	}
}

func TestSOCDAxesIndependent(t *testing.T) {
	v := NewSOCDCleaner(KC_W, KC_S, SOCD_LAST)
	h := NewSOCDCleaner(KC_A, KC_D, SOCD_LAST)

	for _, ev := range []KeyEvent{press(KC_W), press(KC_A), press(KC_D)} {
		v.Process(ev)
		h.Process(ev)
	}

	if kc, _ := v.ActiveKey(); kc != KC_W {
		t.Errorf("Vertical axis: expected KC_W active, got %s", KeycodeString(kc))
	}
	if kc, _ := h.ActiveKey(); kc != KC_D {
		t.Errorf("Horizontal axis: expected KC_D active, got %s", KeycodeString(kc))
	}
}

func TestParseSOCDResolution(t *testing.T) {
	for r := SOCD_OFF; r <= SOCD_1_WINS; r++ {
		got, ok := ParseSOCDResolution(r.String())
		if !ok || got != r {
			t.Errorf("Parse(%q): expected %d, got %d (ok=%v)", r.String(), r, got, ok)
		}
	}
	if _, ok := ParseSOCDResolution("first"); ok {
		t.Error("Expected unknown resolution to fail")
	}
}
