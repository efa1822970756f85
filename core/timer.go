package core

// TickHz is the rate of the system tick counter. One tick is one millisecond.
const TickHz = 1000

var (
	systemTicks uint32
	tickSource  func() uint32
)

// GetTime returns the current system time in milliseconds.
// The counter wraps at 2^32; compare timestamps with Elapsed.
func GetTime() uint32 {
	if tickSource != nil {
		return tickSource()
	}
	return getSystemTicks()
}

// SetTime sets the current system time (for testing/hardware integration)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// Tick advances the system time by one millisecond.
// Called by the platform tick event, never by the main sequence.
func Tick() {
	incSystemTicks()
}

// SetTickSource makes GetTime sample a free-running hardware counter
// instead of the interrupt-driven tick. Pass nil to go back to Tick.
func SetTickSource(src func() uint32) {
	tickSource = src
}

// Elapsed returns now-start using wrapping arithmetic. The result is
// correct across the counter wraparound as long as the real interval is
// below 2^31 ms.
func Elapsed(start, now uint32) uint32 {
	return now - start
}

// IntervalElapsed reports whether at least interval ms have passed since last.
func IntervalElapsed(last, now, interval uint32) bool {
	return Elapsed(last, now) >= interval
}

// TimerFromMS converts milliseconds to timer ticks
func TimerFromMS(ms uint32) uint32 {
	return ms * TickHz / 1000
}

// ProcessTimers samples the clock and runs due periodic timers
func ProcessTimers() {
	currentTime = GetTime()
	TimerDispatch()
}
