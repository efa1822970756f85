package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event captures a hardware layer event for post-mortem analysis
type Event struct {
	Type  uint8  // Event type code
	Clock uint32 // System time at event
	Value uint32 // Context-dependent value
}

// Event type codes
const (
	EvtRuntimeInit     = 1 // runtime substrate started, value = tick
	EvtClockConfigured = 2 // clock tree up, value = core Hz
	EvtGPIOConfigured  = 3 // status line bound, value = pin
	EvtReadTimeout     = 4 // read stopped on timeout, value = bytes read
	EvtBadDescriptor   = 5 // stream call with unknown fd, value = fd
	EvtFatal           = 6 // fatal halt requested
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	eventRing     [EventRingSize]Event
	eventRingHead uint8 // Next write position
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to the debug channel, UART, etc.
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

// DebugPrintln writes a debug message using the platform-specific writer.
// Blocks for as long as the writer does.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures an event in the ring buffer. Never blocks.
func RecordEvent(eventType uint8, value uint32) {
	idx := eventRingHead
	eventRing[idx] = Event{
		Type:  eventType,
		Clock: GetTime(),
		Value: value,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first
func Events() []Event {
	out := make([]Event, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.Type == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// EventName returns a short label for an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtRuntimeInit:
		return "RUNTIME_INIT"
	case EvtClockConfigured:
		return "CLOCK_OK"
	case EvtGPIOConfigured:
		return "GPIO_OK"
	case EvtReadTimeout:
		return "READ_TIMEOUT"
	case EvtBadDescriptor:
		return "BAD_FD"
	case EvtFatal:
		return "FATAL!"
	}
	return "UNKNOWN"
}

// DumpEventRing outputs the event ring buffer (call on shutdown/error)
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENT] === Event Ring Dump ===")
	for _, evt := range Events() {
		debugPrintln("[EVENT] " + EventName(evt.Type) +
			" clock=" + utoa(evt.Clock) +
			" v=" + utoa(evt.Value))
	}
	debugPrintln("[EVENT] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
}
