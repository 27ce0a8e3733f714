package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okan/focusly/internal/store"
	"github.com/okan/focusly/internal/timer"
)

type pomodoroModel struct {
	store  *store.Store
	userID int64
	width  int
	height int

	machine *timer.Machine

	// Today's stats, refreshed after each completed work phase.
	todayPomodoros int
	todaySeconds   int64
}

func newPomodoroModel(s *store.Store, userID int64) pomodoroModel {
	m := pomodoroModel{
		store:  s,
		userID: userID,
	}
	m.machine = timer.New(s.WorkDuration(), s.BreakDuration(), storeRecorder{store: s, userID: userID})
	return m
}

func (p *pomodoroModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type statsDataMsg struct {
	pomodoros int
	seconds   int64
}

func (p pomodoroModel) loadStats() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		pomodoros, seconds, _ := p.store.GetDayStats(p.userID, dayStart)
		return statsDataMsg{pomodoros: pomodoros, seconds: seconds}
	}
}

// applyDurations resynchronizes the machine with the persisted settings,
// called after the settings form saves.
func (p *pomodoroModel) applyDurations() {
	p.machine.SetWorkDuration(p.store.WorkDuration())
	p.machine.SetBreakDuration(p.store.BreakDuration())
}

func (p pomodoroModel) update(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		before := p.machine.Mode()
		p.machine.Tick()
		if p.machine.Mode() != before {
			// Phase boundary: the recorder already has the session; refresh
			// the stats line and announce the new phase.
			label := "Break time! \a"
			if p.machine.Mode() == timer.ModeWork {
				label = "Back to work \a"
			}
			return p, tea.Batch(p.loadStats(), func() tea.Msg {
				return statusMsg{text: label}
			})
		}
		return p, nil

	case statsDataMsg:
		p.todayPomodoros = msg.pomodoros
		p.todaySeconds = msg.seconds
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			p.machine.Start()
			return p, nil
		case key.Matches(msg, keys.Pause):
			if p.machine.Running() {
				p.machine.Pause()
			} else {
				p.machine.Start()
			}
			return p, nil
		case key.Matches(msg, keys.Reset):
			p.machine.Reset()
			return p, nil
		}
	}
	return p, nil
}

func (p pomodoroModel) view() string {
	w := p.width - 4

	title := titleStyle.Render("Pomodoro Timer")

	clock := formatClock(p.machine.Remaining())
	var timeDisplay, phaseLabel, indicator string

	switch {
	case p.machine.Mode() == timer.ModeBreak:
		timeDisplay = successStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(clock)
		phaseLabel = successStyle.Bold(true).Render("BREAK")
	default:
		timeDisplay = accentStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(clock)
		phaseLabel = accentStyle.Bold(true).Render("WORK")
	}

	if p.machine.Running() {
		indicator = successStyle.Render("●  RUNNING")
	} else {
		timeDisplay = timerStyle.Width(w - 6).Render(clock)
		indicator = mutedStyle.Render("⏸  PAUSED — press s or space")
	}

	statsLine := mutedStyle.Render(fmt.Sprintf(
		"Today: %d pomodoros · %s focused", p.todayPomodoros, formatSeconds(p.todaySeconds),
	))

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		timeDisplay,
		phaseLabel,
		indicator,
		"",
		statsLine,
	)

	controls := mutedStyle.Render("s: start  space: pause/resume  r: reset  q: quit")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, content, "", controls),
	)
}
