package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func (s *Store) CreateTask(userID int64, title string, startDate, endDate *time.Time) (*Task, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO tasks (user_id, title, start_date, end_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		userID, title, formatOptTime(startDate), formatOptTime(endDate), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetTask(userID, id)
}

func (s *Store) GetTask(userID, id int64) (*Task, error) {
	row := s.db.QueryRow(
		`SELECT id, user_id, title, completed, start_date, end_date, created_at, updated_at
		 FROM tasks WHERE id = ? AND user_id = ?`, id, userID,
	)
	t, err := scanTask(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, nil
}

// SetTaskCompleted flips the completed flag and touches updated_at, which the
// review aggregation reads as the completion transition time.
func (s *Store) SetTaskCompleted(userID, id int64, completed bool) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`UPDATE tasks SET completed = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		boolToInt(completed), now, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateTaskTitle(userID, id int64, title string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`UPDATE tasks SET title = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		title, now, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListTasks(f TaskFilter) ([]Task, error) {
	query := `SELECT id, user_id, title, completed, start_date, end_date, created_at, updated_at
	          FROM tasks WHERE user_id = ?`
	args := []any{f.UserID}

	if f.Completed != nil {
		query += ` AND completed = ?`
		args = append(args, boolToInt(*f.Completed))
	}
	if f.UpdatedFrom != nil {
		query += ` AND updated_at >= ?`
		args = append(args, f.UpdatedFrom.UTC().Format(time.RFC3339))
	}
	if f.UpdatedTo != nil {
		query += ` AND updated_at < ?`
		args = append(args, f.UpdatedTo.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY updated_at DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func scanTask(scan func(...any) error) (*Task, error) {
	t := &Task{}
	var completed int
	var startDate, endDate sql.NullString
	var createdAt, updatedAt string
	if err := scan(&t.ID, &t.UserID, &t.Title, &completed, &startDate, &endDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	t.Completed = completed == 1
	t.StartDate = parseOptTime(startDate)
	t.EndDate = parseOptTime(endDate)
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return t, nil
}

func formatOptTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseOptTime(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
