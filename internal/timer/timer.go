// Package timer implements the Pomodoro countdown as an explicit state
// machine. It has no I/O of its own: the owner drives it with a 1-second
// Tick and completed phases are handed to a Recorder.
package timer

import "time"

type Mode int

const (
	ModeWork Mode = iota
	ModeBreak
)

func (m Mode) String() string {
	if m == ModeBreak {
		return "break"
	}
	return "work"
}

// Recorder receives a completed phase. Implementations are expected to hand
// the write off asynchronously and swallow failures; a Record call must never
// block or fail the phase transition that produced it.
type Recorder interface {
	Record(isBreak bool, start, end time.Time)
}

// Machine is a single authoritative countdown: one mode (work or break), an
// orthogonal running flag, and the remaining seconds of the current phase.
// All mutation happens through its methods on one goroutine; the owner is
// responsible for the 1-second tick scheduling and its teardown.
type Machine struct {
	mode      Mode
	running   bool
	remaining int // seconds left in the current phase

	workSeconds  int
	breakSeconds int

	sessionStart time.Time // zero until the first Start after a reset
	recorder     Recorder
	now          func() time.Time
}

func New(work, brk time.Duration, rec Recorder) *Machine {
	m := &Machine{
		mode:         ModeWork,
		workSeconds:  int(work.Seconds()),
		breakSeconds: int(brk.Seconds()),
		recorder:     rec,
		now:          time.Now,
	}
	m.remaining = m.workSeconds
	return m
}

// Start begins (or resumes) the countdown. Starting from a fully reset phase
// marks the session start; resuming after Pause does not.
func (m *Machine) Start() {
	m.running = true
	if m.sessionStart.IsZero() {
		m.sessionStart = m.now()
	}
}

// Pause halts the countdown, preserving the remaining time.
func (m *Machine) Pause() {
	m.running = false
}

// Reset stops the countdown and reinstates the current mode's full duration.
// The mode is kept and no phase-complete event fires.
func (m *Machine) Reset() {
	m.running = false
	m.remaining = m.phaseSeconds(m.mode)
	m.sessionStart = time.Time{}
}

// Tick advances the countdown by one second. At zero it records the completed
// phase, flips mode, and starts timing the next phase immediately.
func (m *Machine) Tick() {
	if !m.running {
		return
	}
	m.remaining--
	if m.remaining > 0 {
		return
	}

	now := m.now()
	if m.recorder != nil {
		m.recorder.Record(m.mode == ModeBreak, m.sessionStart, now)
	}

	if m.mode == ModeWork {
		m.mode = ModeBreak
	} else {
		m.mode = ModeWork
	}
	m.remaining = m.phaseSeconds(m.mode)
	m.sessionStart = now
}

// SetWorkDuration reconfigures the work phase. When the machine is currently
// in work mode the remaining time resynchronizes to the new full duration,
// discarding any in-progress countdown.
func (m *Machine) SetWorkDuration(d time.Duration) {
	m.workSeconds = int(d.Seconds())
	if m.mode == ModeWork {
		m.remaining = m.workSeconds
	}
}

// SetBreakDuration reconfigures the break phase, resynchronizing the
// remaining time when break mode is current.
func (m *Machine) SetBreakDuration(d time.Duration) {
	m.breakSeconds = int(d.Seconds())
	if m.mode == ModeBreak {
		m.remaining = m.breakSeconds
	}
}

func (m *Machine) Mode() Mode        { return m.mode }
func (m *Machine) Running() bool     { return m.running }
func (m *Machine) Remaining() int    { return m.remaining }
func (m *Machine) WorkSeconds() int  { return m.workSeconds }
func (m *Machine) BreakSeconds() int { return m.breakSeconds }

func (m *Machine) phaseSeconds(mode Mode) int {
	if mode == ModeBreak {
		return m.breakSeconds
	}
	return m.workSeconds
}
