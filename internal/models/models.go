// Package models defines the data types persisted and derived by the time
// tracker
package models

import (
	"time"
)

// Session is a single tracked time interval. An active session has no end
// time and no duration; a completed one has both. Date is the YYYY-MM-DD
// partition key derived from StartTime and is never set independently.
type Session struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Date      string        `json:"date"`
	Duration  time.Duration `json:"duration"`
	ID        uint64        `json:"id"`
	Active    bool          `json:"active"`
}

// Completed reports whether the session has ended.
func (s *Session) Completed() bool {
	return !s.Active && !s.EndTime.IsZero()
}

// Overlaps reports whether the half-open interval [start, end) intersects
// the session's own interval. Touching boundaries do not overlap.
func (s *Session) Overlaps(start, end time.Time) bool {
	return start.Before(s.EndTime) && end.After(s.StartTime)
}

// DayStats aggregates the sessions recorded on a single date. It is derived
// on demand and never persisted.
type DayStats struct {
	Date          string        `json:"date"`
	Sessions      []Session     `json:"sessions"`
	TotalDuration time.Duration `json:"total_duration"`
	SessionCount  int           `json:"session_count"`
}

// WeekStats holds one DayStats entry for each of the seven days starting on
// a Sunday.
type WeekStats struct {
	Label     string        `json:"label"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Days      []DayStats    `json:"days"`
	Total     time.Duration `json:"total"`
	Count     int           `json:"count"`
}

// MonthStats aggregates a single calendar month.
type MonthStats struct {
	Label     string        `json:"label"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Days      []DayStats    `json:"days"`
	Total     time.Duration `json:"total"`
	Count     int           `json:"count"`
}

// TimerState is the transient state of the live timer. It is rehydrated from
// the store's active session row and has no persistence of its own.
type TimerState struct {
	StartTime time.Time
	Current   *Session
	Running   bool
}
