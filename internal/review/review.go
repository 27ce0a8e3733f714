// Package review rolls focus sessions and completed tasks into the daily and
// weekly summary shown on the review page. Summaries are recomputed on every
// call and never cached.
package review

import (
	"fmt"
	"sort"
	"time"

	"github.com/okan/focusly/internal/store"
)

// windowDays is the trailing aggregation window, inclusive of today.
const windowDays = 7

// maxCompletedToday caps the task list returned for the current day.
const maxCompletedToday = 20

// DayBucket is one calendar day's slice of the weekly series.
type DayBucket struct {
	Date           string `json:"date"`
	FocusSeconds   int64  `json:"focusSeconds"`
	FocusMinutes   int    `json:"focusMinutes"`
	Pomodoros      int    `json:"pomodoros"`
	CompletedCount int    `json:"completedCount"`
}

type Summary struct {
	Date                string       `json:"date"`
	CompletedToday      []store.Task `json:"completedToday"`
	CompletedTodayCount int          `json:"completedTodayCount"`
	FocusTodaySeconds   int64        `json:"focusTodaySeconds"`
	FocusTodayPomodoros int          `json:"focusTodayPomodoros"`
	WeeklySeries        []DayBucket  `json:"weeklySeries"`
}

// Compute builds the review summary for one user as of now. The weekly series
// always holds exactly 7 buckets, zero-filled for days without activity,
// ascending and ending on the day of now. Either the full summary is returned
// or an error; there is no partial result.
func Compute(s *store.Store, userID int64, now time.Time) (*Summary, error) {
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrowStart := todayStart.AddDate(0, 0, 1)
	windowStart := todayStart.AddDate(0, 0, -(windowDays - 1))

	completed := true
	weeklyTasks, err := s.ListTasks(store.TaskFilter{
		UserID:      userID,
		Completed:   &completed,
		UpdatedFrom: &windowStart,
		UpdatedTo:   &tomorrowStart,
	})
	if err != nil {
		return nil, fmt.Errorf("weekly completed tasks: %w", err)
	}

	isBreak := false
	weeklySessions, err := s.ListFocusSessions(store.SessionFilter{
		UserID:  userID,
		IsBreak: &isBreak,
		From:    &windowStart,
		To:      &tomorrowStart,
	})
	if err != nil {
		return nil, fmt.Errorf("weekly focus sessions: %w", err)
	}

	// Zero-fill one bucket per calendar day so the caller can always chart a
	// full week without gap-filling of its own.
	buckets := make(map[string]*DayBucket, windowDays)
	for d := windowStart; d.Before(tomorrowStart); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		buckets[key] = &DayBucket{Date: key}
	}

	for _, t := range weeklyTasks {
		if t.UpdatedAt.IsZero() {
			continue
		}
		b, ok := buckets[t.UpdatedAt.In(now.Location()).Format("2006-01-02")]
		if !ok {
			continue
		}
		b.CompletedCount++
	}

	for _, fs := range weeklySessions {
		if fs.StartTime.IsZero() {
			continue
		}
		b, ok := buckets[fs.StartTime.In(now.Location()).Format("2006-01-02")]
		if !ok {
			continue
		}
		b.FocusSeconds += fs.DurationSeconds()
		b.Pomodoros++
	}

	series := make([]DayBucket, 0, windowDays)
	for _, b := range buckets {
		b.FocusMinutes = int(float64(b.FocusSeconds)/60 + 0.5)
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })

	todayKey := todayStart.Format("2006-01-02")
	var today DayBucket
	for _, b := range series {
		if b.Date == todayKey {
			today = b
			break
		}
	}

	completedToday := make([]store.Task, 0, maxCompletedToday)
	for _, t := range weeklyTasks { // already sorted most-recent-first
		if len(completedToday) == maxCompletedToday {
			break
		}
		if !t.UpdatedAt.Before(todayStart) && t.UpdatedAt.Before(tomorrowStart) {
			completedToday = append(completedToday, t)
		}
	}

	return &Summary{
		Date:                todayKey,
		CompletedToday:      completedToday,
		CompletedTodayCount: today.CompletedCount,
		FocusTodaySeconds:   today.FocusSeconds,
		FocusTodayPomodoros: today.Pomodoros,
		WeeklySeries:        series,
	}, nil
}
