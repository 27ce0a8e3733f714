package tui

import (
	"fmt"
	"time"

	"github.com/okan/focusly/internal/review"
	"github.com/okan/focusly/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewPomodoro viewState = iota
	viewReview
	viewTasks
	viewSettings
)

var viewNames = []string{"Pomodoro", "Review", "Tasks", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type reviewDataMsg struct {
	summary *review.Summary
	err     error
}

type tasksDataMsg struct {
	tasks []store.Task
}

type settingsDataMsg struct {
	settings []store.Setting
}

type exportDoneMsg struct {
	path string
}

// durationsChangedMsg fires after the settings form saves new phase lengths.
type durationsChangedMsg struct{}

// --- Helpers ---

// formatClock renders remaining seconds as mm:ss.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatSeconds(secs int64) string {
	return formatDuration(time.Duration(secs) * time.Second)
}
