package timer

import (
	"testing"
	"time"
)

// recordedPhase captures one Recorder callback.
type recordedPhase struct {
	isBreak bool
	start   time.Time
	end     time.Time
}

type captureRecorder struct {
	phases []recordedPhase
}

func (r *captureRecorder) Record(isBreak bool, start, end time.Time) {
	r.phases = append(r.phases, recordedPhase{isBreak: isBreak, start: start, end: end})
}

func newTestMachine(work, brk time.Duration) (*Machine, *captureRecorder) {
	rec := &captureRecorder{}
	m := New(work, brk, rec)
	return m, rec
}

func TestInitialState(t *testing.T) {
	m, _ := newTestMachine(25*time.Minute, 5*time.Minute)

	if m.Mode() != ModeWork {
		t.Fatal("machine should start in work mode")
	}
	if m.Running() {
		t.Fatal("machine should start paused")
	}
	if m.Remaining() != 25*60 {
		t.Fatalf("expected full work duration, got %d", m.Remaining())
	}
}

func TestTickRequiresRunning(t *testing.T) {
	m, rec := newTestMachine(25*time.Minute, 5*time.Minute)

	m.Tick()
	if m.Remaining() != 25*60 {
		t.Fatal("tick while paused must not decrement")
	}
	if len(rec.phases) != 0 {
		t.Fatal("no phase should complete")
	}
}

func TestWorkPhaseCompletion(t *testing.T) {
	m, rec := newTestMachine(25*time.Minute, 5*time.Minute)
	m.Start()

	// Run for exactly the work duration.
	for i := 0; i < 25*60; i++ {
		m.Tick()
	}

	if len(rec.phases) != 1 {
		t.Fatalf("expected exactly one phase-complete event, got %d", len(rec.phases))
	}
	if rec.phases[0].isBreak {
		t.Fatal("completed phase was work, not break")
	}
	if m.Mode() != ModeBreak {
		t.Fatal("mode should flip to break")
	}
	if m.Remaining() != 5*60 {
		t.Fatalf("remaining should reset to break duration, got %d", m.Remaining())
	}
	if !m.Running() {
		t.Fatal("machine keeps running across the boundary")
	}
}

func TestBreakPhaseCompletion(t *testing.T) {
	m, rec := newTestMachine(25*time.Minute, 5*time.Minute)
	m.Start()

	for i := 0; i < 25*60+5*60; i++ {
		m.Tick()
	}

	if len(rec.phases) != 2 {
		t.Fatalf("expected two completed phases, got %d", len(rec.phases))
	}
	if !rec.phases[1].isBreak {
		t.Fatal("second completed phase should be the break")
	}
	if m.Mode() != ModeWork {
		t.Fatal("mode should cycle back to work")
	}
	if m.Remaining() != 25*60 {
		t.Fatalf("remaining should reset to work duration, got %d", m.Remaining())
	}
}

func TestPhaseTimestampsChain(t *testing.T) {
	m, rec := newTestMachine(time.Minute, time.Minute)
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Start()
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second)
		m.Tick()
	}
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second)
		m.Tick()
	}

	if len(rec.phases) != 2 {
		t.Fatalf("expected two phases, got %d", len(rec.phases))
	}
	first, second := rec.phases[0], rec.phases[1]
	if !first.end.After(first.start) {
		t.Fatal("phase end must follow its start")
	}
	if !second.start.Equal(first.end) {
		t.Fatal("next phase starts where the previous one ended")
	}
}

func TestPausePreservesRemaining(t *testing.T) {
	m, _ := newTestMachine(25*time.Minute, 5*time.Minute)
	m.Start()

	for i := 0; i < 100; i++ {
		m.Tick()
	}
	m.Pause()

	remaining := m.Remaining()
	if remaining != 25*60-100 {
		t.Fatalf("expected %d remaining, got %d", 25*60-100, remaining)
	}

	// Ticks while paused change nothing.
	m.Tick()
	m.Tick()
	if m.Remaining() != remaining {
		t.Fatal("paused machine must hold its remaining time")
	}

	// Resume continues from where it stopped, not from the full duration.
	m.Start()
	m.Tick()
	if m.Remaining() != remaining-1 {
		t.Fatalf("expected %d after resume+tick, got %d", remaining-1, m.Remaining())
	}
}

func TestResetKeepsMode(t *testing.T) {
	m, rec := newTestMachine(25*time.Minute, 5*time.Minute)
	m.Start()

	// Complete the work phase to land in break mode.
	for i := 0; i < 25*60; i++ {
		m.Tick()
	}
	for i := 0; i < 30; i++ {
		m.Tick()
	}

	m.Reset()

	if m.Mode() != ModeBreak {
		t.Fatal("reset must not flip mode")
	}
	if m.Running() {
		t.Fatal("reset stops the countdown")
	}
	if m.Remaining() != 5*60 {
		t.Fatalf("reset reinstates the break duration, got %d", m.Remaining())
	}
	if len(rec.phases) != 1 {
		t.Fatal("reset must not emit a phase-complete event")
	}
}

func TestResetThenStartBeginsNewSession(t *testing.T) {
	m, rec := newTestMachine(time.Minute, time.Minute)
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Start()
	for i := 0; i < 10; i++ {
		now = now.Add(time.Second)
		m.Tick()
	}
	m.Reset()

	// Session start is re-anchored at the next Start, not carried over.
	now = now.Add(time.Hour)
	m.Start()
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second)
		m.Tick()
	}

	if len(rec.phases) != 1 {
		t.Fatalf("expected one phase, got %d", len(rec.phases))
	}
	if got := rec.phases[0].end.Sub(rec.phases[0].start); got != time.Minute {
		t.Fatalf("session should span only the post-reset run, got %v", got)
	}
}

func TestSetWorkDurationResyncsCurrentMode(t *testing.T) {
	m, _ := newTestMachine(25*time.Minute, 5*time.Minute)
	m.Start()
	for i := 0; i < 200; i++ {
		m.Tick()
	}

	// In-progress countdown is overwritten when the current mode changes.
	m.SetWorkDuration(50 * time.Minute)
	if m.Remaining() != 50*60 {
		t.Fatalf("expected resync to 3000s, got %d", m.Remaining())
	}

	// The other mode's duration changes without touching the countdown.
	m.SetBreakDuration(10 * time.Minute)
	if m.Remaining() != 50*60 {
		t.Fatal("break duration change must not resync a work countdown")
	}
	if m.BreakSeconds() != 10*60 {
		t.Fatal("break duration should be updated")
	}
}

func TestSetBreakDurationResyncsInBreakMode(t *testing.T) {
	m, _ := newTestMachine(time.Minute, 5*time.Minute)
	m.Start()
	for i := 0; i < 60; i++ {
		m.Tick()
	}
	if m.Mode() != ModeBreak {
		t.Fatal("should be in break mode")
	}

	m.SetBreakDuration(2 * time.Minute)
	if m.Remaining() != 2*60 {
		t.Fatalf("expected resync to 120s, got %d", m.Remaining())
	}
}

func TestNilRecorder(t *testing.T) {
	m := New(time.Minute, time.Minute, nil)
	m.Start()
	for i := 0; i < 60; i++ {
		m.Tick()
	}
	if m.Mode() != ModeBreak {
		t.Fatal("transition proceeds without a recorder")
	}
}
