package domain

import "time"

// PointsPerLevel is the number of points needed to advance one level
const PointsPerLevel = 100

// Stats is the gamification singleton persisted under the stats key
type Stats struct {
	Points            int    `json:"points" yaml:"points"`
	Level             int    `json:"level" yaml:"level"`
	Streak            int    `json:"streak" yaml:"streak"`
	LastCompletedDate string `json:"lastCompletedDate,omitempty" yaml:"lastCompletedDate,omitempty"`
}

// DefaultStats returns the stats of a user who has completed nothing
func DefaultStats() Stats {
	return Stats{Points: 0, Level: 1, Streak: 0}
}

// LevelFor derives the level from a point total
func LevelFor(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// Normalize clamps negative counters and recomputes the level from points
func (s Stats) Normalize() Stats {
	if s.Points < 0 {
		s.Points = 0
	}
	if s.Streak < 0 {
		s.Streak = 0
	}
	s.Level = LevelFor(s.Points)
	return s
}

// WithCompletion returns the stats after one completion worth points on the
// calendar day of now (in now's location).
//
// A second completion on the same day leaves the streak as is, a completion
// the day after the last one extends it, and anything else restarts it at 1.
func (s Stats) WithCompletion(points int, now time.Time) Stats {
	s.Points += points
	s = s.Normalize()

	today := CalendarDay(now)
	yesterday := today.AddDate(0, 0, -1)

	switch s.LastCompletedDate {
	case today.Format(DateLayout):
		// already counted today
	case yesterday.Format(DateLayout):
		s.Streak++
	default:
		s.Streak = 1
	}
	s.LastCompletedDate = today.Format(DateLayout)
	return s
}

// CalendarDay returns midnight UTC of t's local calendar date.
// Day arithmetic on the result is free of DST shifts.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
