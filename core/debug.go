package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TraceEvent captures a state transition for post-mortem analysis
type TraceEvent struct {
	Kind   uint8   // Event kind (Evt*)
	Key    Keycode // Key involved, KC_NO if none
	Seq    uint32  // Monotonic sequence number
	Value1 uint32  // Context-dependent value
	Value2 uint32  // Context-dependent value
}

// Event kinds
const (
	EvtPostInit     = 1 // Defaults applied, Value1=mode
	EvtSOCD         = 2 // Opposing key synced, Key=synced key, Value1=pressed, Value2=active variant
	EvtSOCDDrop     = 3 // Event dropped by a cleaner, Key=dropped key
	EvtModeChange   = 4 // Value1=old mode, Value2=new mode
	EvtOverlayEnter = 5 // Value1=layer, Value2=captured HSV packed
	EvtOverlayExit  = 6 // Value2=restored HSV packed
	EvtToggle       = 7 // LED system toggled, Value1=enabled after toggle
	EvtCommit       = 8 // Effect committed, Value1=mode, Value2=HSV packed
	EvtEncoder      = 9 // Value1=action, Value2=clockwise
)

const (
	TraceRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Trace capture ring buffer (non-blocking, for post-mortem)
	traceRing     [TraceRingSize]TraceEvent
	traceRingHead uint8
	traceSeq      uint32

	// traceSink receives every event as it is recorded (e.g. framed onto the console)
	traceSink func(TraceEvent)
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// SetTraceSink registers a function called for every recorded event.
// Pass nil to stop forwarding.
func SetTraceSink(sink func(TraceEvent)) {
	traceSink = sink
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// PackHSV packs c into the low 24 bits of a trace value
func PackHSV(c HSV) uint32 {
	return uint32(c.H)<<16 | uint32(c.S)<<8 | uint32(c.V)
}

// UnpackHSV is the inverse of PackHSV
func UnpackHSV(v uint32) HSV {
	return HSV{H: uint8(v >> 16), S: uint8(v >> 8), V: uint8(v)}
}

// RecordTrace captures an event in the ring buffer and forwards it to the sink
func RecordTrace(kind uint8, key Keycode, value1, value2 uint32) {
	traceSeq++
	evt := TraceEvent{
		Kind:   kind,
		Key:    key,
		Seq:    traceSeq,
		Value1: value1,
		Value2: value2,
	}
	idx := traceRingHead
	traceRing[idx] = evt
	traceRingHead = (idx + 1) % TraceRingSize

	if traceSink != nil {
		traceSink(evt)
	}
	if debugEnabled {
		DebugPrintln(FormatTrace(evt))
	}
}

// TraceKindName returns the short name of an event kind
func TraceKindName(kind uint8) string {
	switch kind {
	case EvtPostInit:
		return "POST_INIT"
	case EvtSOCD:
		return "SOCD_SYNC"
	case EvtSOCDDrop:
		return "SOCD_DROP"
	case EvtModeChange:
		return "MODE"
	case EvtOverlayEnter:
		return "OVERLAY_ON"
	case EvtOverlayExit:
		return "OVERLAY_OFF"
	case EvtToggle:
		return "TOGGLE"
	case EvtCommit:
		return "COMMIT"
	case EvtEncoder:
		return "ENCODER"
	default:
		return "UNKNOWN"
	}
}

// FormatTrace renders an event as a single console line
func FormatTrace(evt TraceEvent) string {
	line := "[TRACE] " + utoa(evt.Seq) + " " + TraceKindName(evt.Kind)
	if evt.Key != KC_NO {
		line += " key=" + KeycodeString(evt.Key)
	}
	switch evt.Kind {
	case EvtModeChange:
		return line + " " + LightingMode(evt.Value1).String() + "->" + LightingMode(evt.Value2).String()
	case EvtPostInit:
		return line + " mode=" + LightingMode(evt.Value1).String()
	case EvtEncoder:
		return line + " action=" + EncoderAction(evt.Value1).String() + " cw=" + utoa(evt.Value2)
	}
	return line + " v1=" + utoa(evt.Value1) + " v2=" + utoa(evt.Value2)
}

// TraceEvents returns the ring contents from oldest to newest
func TraceEvents() []TraceEvent {
	out := make([]TraceEvent, 0, TraceRingSize)
	start := traceRingHead
	for i := uint8(0); i < TraceRingSize; i++ {
		idx := (start + i) % TraceRingSize
		if traceRing[idx].Kind == 0 {
			continue // Empty slot
		}
		out = append(out, traceRing[idx])
	}
	return out
}

// DumpTraceRing outputs the trace ring buffer through the debug writer
func DumpTraceRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TRACE] === Trace Ring Dump ===")
	for _, evt := range TraceEvents() {
		debugPrintln(FormatTrace(evt))
	}
	debugPrintln("[TRACE] === End Dump ===")
}

// ClearTraceRing clears the trace buffer
func ClearTraceRing() {
	for i := range traceRing {
		traceRing[i] = TraceEvent{}
	}
	traceRingHead = 0
	traceSeq = 0
}
