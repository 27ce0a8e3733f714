package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (s *Store) CreateAuthSession(userID int64, ttl time.Duration) (*AuthSession, error) {
	now := time.Now().UTC()
	a := &AuthSession{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	_, err := s.db.Exec(
		`INSERT INTO auth_sessions (token, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`,
		a.Token, a.UserID, a.ExpiresAt.Format(time.RFC3339), a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("insert auth session: %w", err)
	}
	return a, nil
}

// GetAuthSession resolves a token to a live session. Expired tokens are
// deleted on sight and reported as ErrNotFound.
func (s *Store) GetAuthSession(token string) (*AuthSession, error) {
	a := &AuthSession{}
	var expiresAt, createdAt string
	err := s.db.QueryRow(
		`SELECT token, user_id, expires_at, created_at FROM auth_sessions WHERE token = ?`, token,
	).Scan(&a.Token, &a.UserID, &expiresAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get auth session: %w", err)
	}
	a.ExpiresAt, _ = time.Parse(time.RFC3339, expiresAt)
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	if !a.ExpiresAt.After(time.Now().UTC()) {
		s.DeleteAuthSession(token)
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *Store) DeleteAuthSession(token string) error {
	_, err := s.db.Exec(`DELETE FROM auth_sessions WHERE token = ?`, token)
	return err
}

func (s *Store) DeleteExpiredAuthSessions() error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`DELETE FROM auth_sessions WHERE expires_at <= ?`, now)
	return err
}
