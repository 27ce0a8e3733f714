package store

import (
	"fmt"
	"strconv"
	"time"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// WorkDuration returns the configured work phase length, defaulting to 25min.
func (s *Store) WorkDuration() time.Duration {
	return s.settingMinutes("work_minutes", 25*time.Minute)
}

// BreakDuration returns the configured break phase length, defaulting to 5min.
func (s *Store) BreakDuration() time.Duration {
	return s.settingMinutes("break_minutes", 5*time.Minute)
}

func (s *Store) SetDurations(workMinutes, breakMinutes int) error {
	if err := s.SetSetting("work_minutes", strconv.Itoa(workMinutes)); err != nil {
		return err
	}
	return s.SetSetting("break_minutes", strconv.Itoa(breakMinutes))
}

func (s *Store) settingMinutes(key string, fallback time.Duration) time.Duration {
	v, err := s.GetSetting(key)
	if err != nil {
		return fallback
	}
	mins, err := strconv.Atoi(v)
	if err != nil || mins <= 0 {
		return fallback
	}
	return time.Duration(mins) * time.Minute
}
