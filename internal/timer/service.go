// Package timer keeps one elapsed-seconds counter per in-progress task.
package timer

import (
	"context"
	"sync"
	"time"

	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// State is the lifecycle stage of a single task timer
type State int

const (
	NotStarted State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "not started"
	}
}

type slot struct {
	state   State
	elapsed int
}

// Service tracks timers by task ID. Timers are never persisted.
//
// The service does not schedule anything itself: the owner delivers ticks
// through Tick (the TUI from tea.Tick messages) or Run (a ticker channel).
// A stopped timer ignores ticks, so once Stop returns its counter is final.
type Service struct {
	mu     sync.Mutex
	timers map[string]*slot
}

// Ensure Service implements TimerControl
var _ ports.TimerControl = (*Service)(nil)

// NewService creates a service with no timers
func NewService() *Service {
	return &Service{timers: make(map[string]*slot)}
}

// Start moves a timer from NotStarted to Running with a zero counter.
// It returns false and changes nothing if the timer was already started.
func (s *Service) Start(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok && t.state != NotStarted {
		return false
	}
	s.timers[id] = &slot{state: Running}
	return true
}

// Tick advances a running timer by one second and returns the new count.
// ok is false when the timer is not running; nothing changes then.
func (s *Service) Tick(id string) (elapsed int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, found := s.timers[id]
	if !found || t.state != Running {
		return s.elapsedLocked(id), false
	}
	t.elapsed++
	return t.elapsed, true
}

// Stop freezes a running timer. Stopping an unknown, unstarted or already
// stopped timer does nothing.
func (s *Service) Stop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok && t.state == Running {
		t.state = Stopped
	}
}

// Forget drops the timer for a task that no longer exists
func (s *Service) Forget(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.timers, id)
}

// Reset drops every timer
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timers = make(map[string]*slot)
}

// State returns the lifecycle stage of a timer
func (s *Service) State(id string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		return t.state
	}
	return NotStarted
}

// Elapsed returns the counted seconds of a timer
func (s *Service) Elapsed(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.elapsedLocked(id)
}

func (s *Service) elapsedLocked(id string) int {
	if t, ok := s.timers[id]; ok {
		return t.elapsed
	}
	return 0
}

// Running returns the IDs of all running timers
func (s *Service) Running() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for id, t := range s.timers {
		if t.state == Running {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clock renders a timer as HH:MM:SS
func (s *Service) Clock(id string) string {
	return domain.FormatClock(s.Elapsed(id))
}

// Compact renders a timer as M:SS
func (s *Service) Compact(id string) string {
	return domain.FormatCompact(s.Elapsed(id))
}

// Run drives the timer for id from ticks in the calling goroutine until ctx
// is done, the channel closes, or the timer is stopped elsewhere. The timer
// is started if needed and is stopped when Run returns. onTick, if set, is
// called with the new count after every accepted tick.
func (s *Service) Run(ctx context.Context, id string, ticks <-chan time.Time, onTick func(elapsed int)) int {
	s.Start(id)
	defer s.Stop(id)

	for {
		select {
		case <-ctx.Done():
			s.Stop(id)
			return s.Elapsed(id)
		case _, open := <-ticks:
			if !open {
				s.Stop(id)
				return s.Elapsed(id)
			}
			elapsed, ok := s.Tick(id)
			if !ok {
				return elapsed
			}
			if onTick != nil {
				onTick(elapsed)
			}
		}
	}
}
