package store

import (
	"fmt"
	"time"
)

// CreateFocusSession appends a completed timer phase. Rows are write-once:
// there is no update or delete path for focus sessions.
func (s *Store) CreateFocusSession(userID int64, isBreak bool, start, end time.Time) (*FocusSession, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO focus_sessions (user_id, start_time, end_time, is_break, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		userID, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339),
		boolToInt(isBreak), now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert focus session: %w", err)
	}
	id, _ := res.LastInsertId()
	return &FocusSession{
		ID:        id,
		UserID:    userID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		IsBreak:   isBreak,
	}, nil
}

func (s *Store) ListFocusSessions(f SessionFilter) ([]FocusSession, error) {
	query := `SELECT id, user_id, start_time, end_time, is_break, created_at
	          FROM focus_sessions WHERE user_id = ?`
	args := []any{f.UserID}

	if f.IsBreak != nil {
		query += ` AND is_break = ?`
		args = append(args, boolToInt(*f.IsBreak))
	}
	if f.From != nil {
		query += ` AND start_time >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND start_time < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY start_time DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list focus sessions: %w", err)
	}
	defer rows.Close()

	var sessions []FocusSession
	for rows.Next() {
		var fs FocusSession
		var startTime, endTime, createdAt string
		var isBreak int
		if err := rows.Scan(&fs.ID, &fs.UserID, &startTime, &endTime, &isBreak, &createdAt); err != nil {
			return nil, err
		}
		fs.IsBreak = isBreak == 1
		fs.StartTime, _ = time.Parse(time.RFC3339, startTime)
		fs.EndTime, _ = time.Parse(time.RFC3339, endTime)
		fs.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sessions = append(sessions, fs)
	}
	return sessions, rows.Err()
}

// GetDayStats returns the pomodoro count and summed focus seconds of the
// caller's non-break sessions starting within [dayStart, dayStart+24h).
// Negative durations clamp to zero.
func (s *Store) GetDayStats(userID int64, dayStart time.Time) (pomodoros int, focusSeconds int64, err error) {
	isBreak := false
	from := dayStart
	to := dayStart.Add(24 * time.Hour)
	sessions, err := s.ListFocusSessions(SessionFilter{
		UserID:  userID,
		IsBreak: &isBreak,
		From:    &from,
		To:      &to,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("day stats: %w", err)
	}
	for _, fs := range sessions {
		pomodoros++
		focusSeconds += fs.DurationSeconds()
	}
	return pomodoros, focusSeconds, nil
}
