package store

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Persona      string    `json:"persona,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthSession is an opaque login token handed to a client as a cookie.
type AuthSession struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Task struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// FocusSession is the write-once record of one completed timer phase.
type FocusSession struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	IsBreak   bool      `json:"isBreak"`
	CreatedAt time.Time `json:"createdAt"`
}

// DurationSeconds is derived, never stored. A session whose end precedes its
// start contributes zero, not a negative value.
func (f FocusSession) DurationSeconds() int64 {
	d := int64(f.EndTime.Sub(f.StartTime).Seconds())
	if d < 0 {
		return 0
	}
	return d
}

type Setting struct {
	Key   string
	Value string
}

// TaskFilter filters task queries. UserID is mandatory: every query is scoped
// to its owning user.
type TaskFilter struct {
	UserID      int64
	Completed   *bool
	UpdatedFrom *time.Time
	UpdatedTo   *time.Time
	Limit       int
}

// SessionFilter filters focus session queries, scoped to one user.
type SessionFilter struct {
	UserID  int64
	IsBreak *bool
	From    *time.Time
	To      *time.Time
	Limit   int
}
