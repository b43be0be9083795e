// SOCD (Simultaneous Opposing Cardinal Directions) cleaning
// Decides which of two opposing movement keys reaches the report while both are held
package core

// SOCDResolution selects how a pair of opposing keys is resolved
type SOCDResolution uint8

const (
	SOCD_OFF     SOCDResolution = iota // No cleaning, events pass through untracked
	SOCD_LAST                          // Last input wins, the other key reactivates on release
	SOCD_NEUTRAL                       // Both keys cancel while held together
	SOCD_0_WINS                        // Keys[0] always wins
	SOCD_1_WINS                        // Keys[1] always wins
)

var resolutionNames = [...]string{"off", "last", "neutral", "0_wins", "1_wins"}

func (r SOCDResolution) String() string {
	if int(r) < len(resolutionNames) {
		return resolutionNames[r]
	}
	return "unknown"
}

// ParseSOCDResolution maps a resolution name ("last", "neutral", ...) to its value
func ParseSOCDResolution(s string) (SOCDResolution, bool) {
	for i, name := range resolutionNames {
		if s == name {
			return SOCDResolution(i), true
		}
	}
	return SOCD_OFF, false
}

// SOCDActive records which member of the pair currently reaches the report
type SOCDActive uint8

const (
	SOCDNone SOCDActive = iota
	SOCDKey0
	SOCDKey1
)

// KeyChange is a report change the cleaner asks the host to apply
type KeyChange struct {
	Key     Keycode
	Pressed bool
}

// SOCDResult is the outcome of feeding one event to a cleaner
type SOCDResult struct {
	Propagate bool      // false: drop the event before default handling
	Sync      KeyChange // report change for the opposing key, valid if HasSync
	HasSync   bool
}

// SOCDCleaner holds the state of one axis (e.g. W/S or A/D)
type SOCDCleaner struct {
	Keys       [2]Keycode
	Resolution SOCDResolution

	held   [2]bool
	active SOCDActive
}

// NewSOCDCleaner creates a cleaner for the opposing pair (k0, k1)
func NewSOCDCleaner(k0, k1 Keycode, resolution SOCDResolution) *SOCDCleaner {
	return &SOCDCleaner{
		Keys:       [2]Keycode{k0, k1},
		Resolution: resolution,
	}
}

// Active returns which member currently reaches the report
func (c *SOCDCleaner) Active() SOCDActive {
	return c.active
}

// ActiveKey returns the keycode of the active member, if any
func (c *SOCDCleaner) ActiveKey() (Keycode, bool) {
	switch c.active {
	case SOCDKey0:
		return c.Keys[0], true
	case SOCDKey1:
		return c.Keys[1], true
	}
	return KC_NO, false
}

// Held reports whether member i (0 or 1) is physically held
func (c *SOCDCleaner) Held(i int) bool {
	return c.held[i&1]
}

// Reset forgets all held state
func (c *SOCDCleaner) Reset() {
	c.held = [2]bool{}
	c.active = SOCDNone
}

// Process applies the resolution policy to one event.
// Events for keys outside the pair always propagate untouched.
func (c *SOCDCleaner) Process(ev KeyEvent) SOCDResult {
	pass := SOCDResult{Propagate: true}

	if c.Resolution == SOCD_OFF {
		return pass
	}

	var i int
	switch ev.Key {
	case c.Keys[0]:
		i = 0
	case c.Keys[1]:
		i = 1
	default:
		return pass
	}
	opposing := i ^ 1

	// A release without a matching press changes nothing
	if !ev.Pressed && !c.held[i] {
		return pass
	}
	c.held[i] = ev.Pressed

	if !c.held[opposing] {
		if ev.Pressed {
			c.active = memberActive(i)
		} else {
			c.active = SOCDNone
		}
		return pass
	}

	// The opposing key is held: a press suppresses it, a release reactivates it
	sync := KeyChange{Key: c.Keys[opposing], Pressed: !ev.Pressed}

	switch c.Resolution {
	case SOCD_LAST:
		if ev.Pressed {
			c.active = memberActive(i)
		} else {
			c.active = memberActive(opposing)
		}
		return SOCDResult{Propagate: true, Sync: sync, HasSync: true}

	case SOCD_NEUTRAL:
		if ev.Pressed {
			c.active = SOCDNone
		} else {
			c.active = memberActive(opposing)
		}
		return SOCDResult{Propagate: false, Sync: sync, HasSync: true}

	case SOCD_0_WINS, SOCD_1_WINS:
		winner := int(c.Resolution - SOCD_0_WINS)
		if opposing == winner {
			// The winner stays in the report, this key has no effect
			c.active = memberActive(winner)
			return SOCDResult{Propagate: false}
		}
		if ev.Pressed {
			c.active = memberActive(i)
		} else {
			c.active = memberActive(opposing)
		}
		return SOCDResult{Propagate: true, Sync: sync, HasSync: true}
	}

	return pass
}

func memberActive(i int) SOCDActive {
	if i == 0 {
		return SOCDKey0
	}
	return SOCDKey1
}
