package core

// Timer is a periodic task run from the main loop. A timer is due once
// Interval ms have passed since Last (wrap-safe, see IntervalElapsed).
type Timer struct {
	Interval uint32
	Last     uint32
	Handler  func(*Timer) uint8
	Next     *Timer
}

const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

var (
	timerList   *Timer
	currentTime uint32
)

// Due reports whether the timer should run at now
func (t *Timer) Due(now uint32) bool {
	return IntervalElapsed(t.Last, now, t.Interval)
}

// remaining returns the ms left until the timer is due
func (t *Timer) remaining(now uint32) uint32 {
	e := Elapsed(t.Last, now)
	if e >= t.Interval {
		return 0
	}
	return t.Interval - e
}

// ScheduleTimer adds a timer to the schedule, ordered against the live tick
func ScheduleTimer(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	insertTimer(t, GetTime())
}

// CancelTimer removes a timer from the schedule. Returns false if it was not scheduled.
func CancelTimer(t *Timer) bool {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if timerList == t {
		timerList = t.Next
		t.Next = nil
		return true
	}
	for cur := timerList; cur != nil; cur = cur.Next {
		if cur.Next == t {
			cur.Next = t.Next
			t.Next = nil
			return true
		}
	}
	return false
}

// ResetTimers drops every scheduled timer
func ResetTimers() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	timerList = nil
	currentTime = 0
}

// insertTimer inserts a timer sorted by time left until due at now
func insertTimer(t *Timer, now uint32) {
	left := t.remaining(now)
	if timerList == nil || left < timerList.remaining(now) {
		t.Next = timerList
		timerList = t
		return
	}

	current := timerList
	for current.Next != nil && current.Next.remaining(now) <= left {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

// TimerDispatch runs every timer that is due at currentTime. A timer that
// asks to be rescheduled restarts its interval at currentTime and runs at
// most once per dispatch. Handlers run with interrupts enabled so the tick
// keeps advancing while they poll.
func TimerDispatch() {
	var again *Timer
	for {
		timer := popDue()
		if timer == nil {
			break
		}
		if timer.Handler(timer) == SF_RESCHEDULE {
			timer.Last = currentTime
			timer.Next = again
			again = timer
		}
	}

	state := disableInterrupts()
	defer restoreInterrupts(state)
	for again != nil {
		t := again
		again = t.Next
		t.Next = nil
		insertTimer(t, currentTime)
	}
}

// popDue unlinks the first due timer. The whole list is checked since the
// order goes stale once the tick moves past the time it was sorted at.
func popDue() *Timer {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	var prev *Timer
	for cur := timerList; cur != nil; prev, cur = cur, cur.Next {
		if !cur.Due(currentTime) {
			continue
		}
		if prev == nil {
			timerList = cur.Next
		} else {
			prev.Next = cur.Next
		}
		cur.Next = nil
		return cur
	}
	return nil
}
