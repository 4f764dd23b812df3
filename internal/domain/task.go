package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for deadlines and streak dates
const DateLayout = "2006-01-02"

// Rating grades a task's urgency or importance
type Rating string

const (
	RatingLow    Rating = "Low"
	RatingMedium Rating = "Medium"
	RatingHigh   Rating = "High"
)

// Ratings lists the valid ratings in ascending order
var Ratings = []Rating{RatingLow, RatingMedium, RatingHigh}

// ParseRating converts user input into a Rating.
// Matching is case-insensitive and empty input yields RatingLow.
func ParseRating(s string) (Rating, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RatingLow, nil
	}
	for _, r := range Ratings {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown rating %q (expected Low, Medium or High)", s)
}

// Valid reports whether r is one of the defined ratings
func (r Rating) Valid() bool {
	switch r {
	case RatingLow, RatingMedium, RatingHigh:
		return true
	}
	return false
}

func (r Rating) String() string {
	return string(r)
}

// Task is a single tracked task as persisted under the tasks key
type Task struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Deadline    string `json:"deadline" yaml:"deadline"`
	Urgency     Rating `json:"urgency" yaml:"urgency"`
	Importance  Rating `json:"importance" yaml:"importance"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// DeadlineTime parses the deadline as a calendar date
func (t Task) DeadlineTime() (time.Time, error) {
	return time.Parse(DateLayout, t.Deadline)
}

// Overdue reports whether an incomplete task's deadline is before the given day
func (t Task) Overdue(today time.Time) bool {
	if t.Completed {
		return false
	}
	d, err := t.DeadlineTime()
	if err != nil {
		return false
	}
	y, m, day := today.Date()
	return d.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// NewTask holds the user-supplied fields of a task about to be added
type NewTask struct {
	Description string
	Deadline    string
	Urgency     Rating
	Importance  Rating
}

// TaskPatch lists the fields to overwrite on an existing task.
// Nil fields are left untouched.
type TaskPatch struct {
	Description *string
	Deadline    *string
	Urgency     *Rating
	Importance  *Rating
	Completed   *bool
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Description == nil && p.Deadline == nil && p.Urgency == nil &&
		p.Importance == nil && p.Completed == nil
}

// Apply returns a copy of t with the patch fields overwritten
func (p TaskPatch) Apply(t Task) Task {
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
	}
	if p.Deadline != nil {
		t.Deadline = strings.TrimSpace(*p.Deadline)
	}
	if p.Urgency != nil {
		t.Urgency = *p.Urgency
	}
	if p.Importance != nil {
		t.Importance = *p.Importance
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// IndexOf returns the position of the task with the given ID, or -1
func IndexOf(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
