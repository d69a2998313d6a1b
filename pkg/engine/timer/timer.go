// Package timer provides millisecond timers driven by the per-tick elapsed time.
package timer

// State is the lifecycle state of a SystemTimer
type State int

const (
	StateInitial State = iota
	StateRunning
	StatePaused
	StateFinished
)

// String returns the string representation of a timer state
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Infinite makes a timer loop forever
const Infinite = -1

// SystemTimer counts milliseconds fed to it through Update.
// It never reads the wall clock itself, so every timer in a tick sees the same elapsed time.
type SystemTimer struct {
	state     State
	duration  int
	loops     int // 0 = run once, Infinite = loop forever, n = run n times
	expired   int
	completed int
}

// New creates a timer in its initial state
func New(durationMs, loops int) *SystemTimer {
	t := &SystemTimer{}
	t.Initialize(durationMs, loops)
	return t
}

// Initialize sets the duration and loop count and puts the timer back in its initial state
func (t *SystemTimer) Initialize(durationMs, loops int) {
	if durationMs < 0 {
		durationMs = 0
	}
	t.duration = durationMs
	t.loops = loops
	t.Reset()
}

// Reset returns the timer to its initial state keeping duration and loops
func (t *SystemTimer) Reset() {
	t.state = StateInitial
	t.expired = 0
	t.completed = 0
}

// Run starts or resumes the timer. Finished timers stay finished until Reset.
func (t *SystemTimer) Run() {
	if t.state == StateFinished {
		return
	}
	t.state = StateRunning
}

// Pause suspends a running timer
func (t *SystemTimer) Pause() {
	if t.state == StateRunning {
		t.state = StatePaused
	}
}

// Finish forces the timer to its finished state
func (t *SystemTimer) Finish() {
	t.state = StateFinished
	t.expired = t.duration
}

// Update advances a running timer by elapsedMs
func (t *SystemTimer) Update(elapsedMs int) {
	if t.state != StateRunning || elapsedMs <= 0 {
		return
	}

	t.expired += elapsedMs
	if t.expired < t.duration {
		return
	}

	t.completed++
	if t.loops == Infinite || t.completed < t.loops {
		if t.duration == 0 {
			t.expired = 0
		} else {
			t.expired %= t.duration
		}
		return
	}

	t.state = StateFinished
	t.expired = t.duration
}

// SetDuration changes the duration of a timer that is not running
func (t *SystemTimer) SetDuration(durationMs int) {
	if t.state == StateRunning || t.state == StatePaused {
		return
	}
	if durationMs < 0 {
		durationMs = 0
	}
	t.duration = durationMs
}

func (t *SystemTimer) State() State { return t.state }
func (t *SystemTimer) IsInitial() bool { return t.state == StateInitial }
func (t *SystemTimer) IsRunning() bool { return t.state == StateRunning }
func (t *SystemTimer) IsPaused() bool { return t.state == StatePaused }
func (t *SystemTimer) IsFinished() bool { return t.state == StateFinished }
func (t *SystemTimer) Duration() int { return t.duration }
func (t *SystemTimer) TimeExpired() int { return t.expired }
func (t *SystemTimer) TimesCompleted() int { return t.completed }

// TimeLeft returns the milliseconds remaining in the current loop
func (t *SystemTimer) TimeLeft() int {
	if left := t.duration - t.expired; left > 0 {
		return left
	}
	return 0
}

// PercentComplete returns how far through the current loop the timer is, in [0,1]
func (t *SystemTimer) PercentComplete() float64 {
	switch {
	case t.state == StateInitial:
		return 0
	case t.state == StateFinished:
		return 1
	case t.duration == 0:
		return 1
	}
	return float64(t.expired) / float64(t.duration)
}
