package review

import (
	"fmt"
	"testing"
	"time"

	"github.com/okan/focusly/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestUser(t *testing.T, s *store.Store, email string) *store.User {
	t.Helper()
	u, err := s.CreateUser(email, "hash")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

func mustSession(t *testing.T, s *store.Store, userID int64, isBreak bool, start, end time.Time) {
	t.Helper()
	if _, err := s.CreateFocusSession(userID, isBreak, start, end); err != nil {
		t.Fatalf("failed to create focus session: %v", err)
	}
}

// ==================== Weekly Series Shape ====================

func TestWeeklySeriesShape(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "shape@test.com")
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	sum, err := Compute(s, u.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if len(sum.WeeklySeries) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(sum.WeeklySeries))
	}
	if sum.WeeklySeries[0].Date != "2026-08-25" {
		t.Errorf("expected window to open on 2026-08-25, got %s", sum.WeeklySeries[0].Date)
	}
	if sum.WeeklySeries[6].Date != "2026-08-31" {
		t.Errorf("expected window to close on today, got %s", sum.WeeklySeries[6].Date)
	}
	for i := 1; i < len(sum.WeeklySeries); i++ {
		if sum.WeeklySeries[i-1].Date >= sum.WeeklySeries[i].Date {
			t.Fatalf("series not ascending at index %d", i)
		}
	}
	for _, b := range sum.WeeklySeries {
		if b.FocusSeconds != 0 || b.Pomodoros != 0 || b.CompletedCount != 0 {
			t.Errorf("bucket %s should be zero-filled: %+v", b.Date, b)
		}
	}
	if sum.Date != "2026-08-31" {
		t.Errorf("summary date should be today, got %s", sum.Date)
	}
}

func TestSessionsBucketByDay(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "buckets@test.com")
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	// Two pomodoros three days ago, one yesterday, one today.
	threeDaysAgo := now.AddDate(0, 0, -3)
	mustSession(t, s, u.ID, false, threeDaysAgo, threeDaysAgo.Add(25*time.Minute))
	mustSession(t, s, u.ID, false, threeDaysAgo.Add(time.Hour), threeDaysAgo.Add(time.Hour+25*time.Minute))
	yesterday := now.AddDate(0, 0, -1)
	mustSession(t, s, u.ID, false, yesterday, yesterday.Add(10*time.Minute))
	mustSession(t, s, u.ID, false, now.Add(-30*time.Minute), now.Add(-5*time.Minute))

	sum, err := Compute(s, u.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	byDate := make(map[string]DayBucket, len(sum.WeeklySeries))
	for _, b := range sum.WeeklySeries {
		byDate[b.Date] = b
	}

	b := byDate["2026-08-28"]
	if b.Pomodoros != 2 || b.FocusSeconds != 2*25*60 {
		t.Errorf("three days ago: expected 2 pomodoros / 3000s, got %d / %d", b.Pomodoros, b.FocusSeconds)
	}
	if b.FocusMinutes != 50 {
		t.Errorf("expected 50 focus minutes, got %d", b.FocusMinutes)
	}

	b = byDate["2026-08-30"]
	if b.Pomodoros != 1 || b.FocusSeconds != 600 {
		t.Errorf("yesterday: expected 1 pomodoro / 600s, got %d / %d", b.Pomodoros, b.FocusSeconds)
	}

	b = byDate["2026-08-31"]
	if b.Pomodoros != 1 || b.FocusSeconds != 1500 {
		t.Errorf("today: expected 1 pomodoro / 1500s, got %d / %d", b.Pomodoros, b.FocusSeconds)
	}
	if sum.FocusTodayPomodoros != 1 || sum.FocusTodaySeconds != 1500 {
		t.Errorf("today totals should mirror today's bucket, got %d / %d",
			sum.FocusTodayPomodoros, sum.FocusTodaySeconds)
	}
}

func TestBreaksExcluded(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "breaks@test.com")
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	mustSession(t, s, u.ID, false, now.Add(-time.Hour), now.Add(-35*time.Minute))
	mustSession(t, s, u.ID, true, now.Add(-35*time.Minute), now.Add(-30*time.Minute))

	sum, err := Compute(s, u.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if sum.FocusTodayPomodoros != 1 {
		t.Errorf("breaks must not count as pomodoros, got %d", sum.FocusTodayPomodoros)
	}
	if sum.FocusTodaySeconds != 1500 {
		t.Errorf("break time must not count toward focus, got %d", sum.FocusTodaySeconds)
	}
}

func TestSessionsOutsideWindowDropped(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "window@test.com")
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	// Eight days back falls just outside the trailing week.
	old := now.AddDate(0, 0, -8)
	mustSession(t, s, u.ID, false, old, old.Add(25*time.Minute))

	sum, err := Compute(s, u.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	for _, b := range sum.WeeklySeries {
		if b.Pomodoros != 0 {
			t.Errorf("bucket %s should not see an out-of-window session", b.Date)
		}
	}
}

func TestNegativeDurationClampedToZero(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "clamp@test.com")
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	// End before start: the row is kept but contributes zero seconds.
	mustSession(t, s, u.ID, false, now.Add(-time.Minute), now.Add(-20*time.Minute))

	sum, err := Compute(s, u.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if sum.FocusTodaySeconds != 0 {
		t.Errorf("expected clamped 0 seconds, got %d", sum.FocusTodaySeconds)
	}
	if sum.FocusTodayPomodoros != 1 {
		t.Errorf("clamped session still counts as a pomodoro, got %d", sum.FocusTodayPomodoros)
	}
}

// ==================== User Isolation ====================

func TestSummaryScopedToUser(t *testing.T) {
	s := newTestStore(t)
	alice := newTestUser(t, s, "alice@test.com")
	bob := newTestUser(t, s, "bob@test.com")
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	mustSession(t, s, alice.ID, false, now.Add(-time.Hour), now.Add(-35*time.Minute))
	mustSession(t, s, bob.ID, false, now.Add(-2*time.Hour), now.Add(-time.Hour))
	if _, err := s.CreateTask(bob.ID, "bob task", nil, nil); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	sum, err := Compute(s, alice.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if sum.FocusTodayPomodoros != 1 {
		t.Errorf("expected only alice's pomodoro, got %d", sum.FocusTodayPomodoros)
	}
	if len(sum.CompletedToday) != 0 {
		t.Errorf("bob's tasks must not leak into alice's summary")
	}
}

// ==================== Completed Tasks ====================

func TestCompletedTodayListed(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "tasks@test.com")
	now := time.Now().UTC()

	done, err := s.CreateTask(u.ID, "write report", nil, nil)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if err := s.SetTaskCompleted(u.ID, done.ID, true); err != nil {
		t.Fatalf("failed to complete task: %v", err)
	}
	if _, err := s.CreateTask(u.ID, "still open", nil, nil); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	sum, err := Compute(s, u.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if sum.CompletedTodayCount != 1 {
		t.Fatalf("expected 1 completed task today, got %d", sum.CompletedTodayCount)
	}
	if len(sum.CompletedToday) != 1 || sum.CompletedToday[0].Title != "write report" {
		t.Errorf("unexpected completed list: %+v", sum.CompletedToday)
	}
}

func TestTodayScenario(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "scenario@test.com")
	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Three work sessions today totaling 47 minutes, plus one break. Anchored
	// to the day start so they never straddle midnight.
	mustSession(t, s, u.ID, false, todayStart.Add(1*time.Hour), todayStart.Add(1*time.Hour+25*time.Minute))
	mustSession(t, s, u.ID, false, todayStart.Add(3*time.Hour), todayStart.Add(3*time.Hour+12*time.Minute))
	mustSession(t, s, u.ID, false, todayStart.Add(5*time.Hour), todayStart.Add(5*time.Hour+10*time.Minute))
	mustSession(t, s, u.ID, true, todayStart.Add(6*time.Hour), todayStart.Add(6*time.Hour+5*time.Minute))

	for _, title := range []string{"first", "second"} {
		task, err := s.CreateTask(u.ID, title, nil, nil)
		if err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		if err := s.SetTaskCompleted(u.ID, task.ID, true); err != nil {
			t.Fatalf("failed to complete task: %v", err)
		}
	}

	sum, err := Compute(s, u.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if sum.CompletedTodayCount != 2 {
		t.Errorf("expected 2 completed tasks, got %d", sum.CompletedTodayCount)
	}
	if sum.FocusTodaySeconds != 2820 {
		t.Errorf("expected 2820 focus seconds, got %d", sum.FocusTodaySeconds)
	}
	if sum.FocusTodayPomodoros != 3 {
		t.Errorf("expected 3 pomodoros, got %d", sum.FocusTodayPomodoros)
	}

	// Today's bucket in the series carries the same three values.
	today := sum.WeeklySeries[len(sum.WeeklySeries)-1]
	if today.FocusSeconds != 2820 || today.Pomodoros != 3 || today.CompletedCount != 2 {
		t.Errorf("today bucket out of sync with totals: %+v", today)
	}
}

func TestCompletedTodayCapped(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "cap@test.com")
	now := time.Now().UTC()

	for i := 0; i < maxCompletedToday+5; i++ {
		task, err := s.CreateTask(u.ID, fmt.Sprintf("task %d", i), nil, nil)
		if err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
		if err := s.SetTaskCompleted(u.ID, task.ID, true); err != nil {
			t.Fatalf("failed to complete task: %v", err)
		}
	}

	sum, err := Compute(s, u.ID, now)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if len(sum.CompletedToday) != maxCompletedToday {
		t.Errorf("list should cap at %d, got %d", maxCompletedToday, len(sum.CompletedToday))
	}
	if sum.CompletedTodayCount != maxCompletedToday+5 {
		t.Errorf("count should not be capped, got %d", sum.CompletedTodayCount)
	}
}
