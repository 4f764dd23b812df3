package timer

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_SixtyFiveTicks(t *testing.T) {
	s := NewService()
	require.True(t, s.Start("a"))

	for i := 0; i < 65; i++ {
		_, ok := s.Tick("a")
		require.True(t, ok)
	}

	assert.Equal(t, 65, s.Elapsed("a"))
	assert.Equal(t, "00:01:05", s.Clock("a"))
	assert.Equal(t, "1:05", s.Compact("a"))
}

func TestService_NoChangeAfterStop(t *testing.T) {
	s := NewService()
	s.Start("a")
	for i := 0; i < 10; i++ {
		s.Tick("a")
	}

	s.Stop("a")
	for i := 0; i < 5; i++ {
		elapsed, ok := s.Tick("a")
		assert.False(t, ok)
		assert.Equal(t, 10, elapsed)
	}
	assert.Equal(t, Stopped, s.State("a"))
	assert.Equal(t, 10, s.Elapsed("a"))
}

func TestService_StopIsIdempotent(t *testing.T) {
	s := NewService()

	// unknown / not started
	s.Stop("ghost")
	assert.Equal(t, NotStarted, s.State("ghost"))

	s.Start("a")
	s.Tick("a")
	s.Stop("a")
	s.Stop("a")
	assert.Equal(t, Stopped, s.State("a"))
	assert.Equal(t, 1, s.Elapsed("a"))
}

func TestService_StartOnlyFromNotStarted(t *testing.T) {
	s := NewService()
	require.True(t, s.Start("a"))
	s.Tick("a")

	assert.False(t, s.Start("a"), "restart of running timer")
	assert.Equal(t, 1, s.Elapsed("a"))

	s.Stop("a")
	assert.False(t, s.Start("a"), "no resume after stop")
	assert.Equal(t, Stopped, s.State("a"))
}

func TestService_TimersAreIndependent(t *testing.T) {
	s := NewService()
	s.Start("a")
	s.Start("b")

	for i := 0; i < 3; i++ {
		s.Tick("a")
	}
	s.Tick("b")
	s.Stop("a")
	s.Tick("a")
	s.Tick("b")

	assert.Equal(t, 3, s.Elapsed("a"))
	assert.Equal(t, 2, s.Elapsed("b"))
	assert.Equal(t, []string{"b"}, s.Running())
}

func TestService_TickUnknownTimer(t *testing.T) {
	s := NewService()
	elapsed, ok := s.Tick("missing")
	assert.False(t, ok)
	assert.Zero(t, elapsed)
}

func TestService_ForgetAndReset(t *testing.T) {
	s := NewService()
	s.Start("a")
	s.Start("b")
	s.Tick("a")

	s.Forget("a")
	assert.Equal(t, NotStarted, s.State("a"))
	assert.Zero(t, s.Elapsed("a"))

	s.Reset()
	assert.Empty(t, s.Running())
	assert.Equal(t, NotStarted, s.State("b"))
}

func TestService_RunStopsOnCancel(t *testing.T) {
	s := NewService()
	ticks := make(chan time.Time)
	ctx, cancel := context.WithCancel(context.Background())

	var seen []int
	done := make(chan int)
	go func() {
		done <- s.Run(ctx, "a", ticks, func(elapsed int) {
			seen = append(seen, elapsed)
			if elapsed == 3 {
				cancel()
			}
		})
	}()

	for i := 0; i < 3; i++ {
		ticks <- time.Now()
	}

	elapsed := <-done
	assert.Equal(t, 3, elapsed)
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, Stopped, s.State("a"))
}

func TestService_RunReturnsWhenStoppedElsewhere(t *testing.T) {
	s := NewService()
	ticks := make(chan time.Time, 4)
	ticks <- time.Now()
	ticks <- time.Now()

	s.Start("a")
	calls := 0
	s.Stop("a")
	elapsed := s.Run(context.Background(), "a", ticks, func(int) { calls++ })

	assert.Zero(t, elapsed)
	assert.Zero(t, calls, "no tick callbacks after stop")
}

func TestService_RunStopsWhenTicksClose(t *testing.T) {
	s := NewService()
	ticks := make(chan time.Time, 2)
	ticks <- time.Now()
	ticks <- time.Now()
	close(ticks)

	elapsed := s.Run(context.Background(), "a", ticks, nil)
	assert.Equal(t, 2, elapsed)
	assert.Equal(t, Stopped, s.State("a"))
}

func TestState_String(t *testing.T) {
	names := []string{NotStarted.String(), Running.String(), Stopped.String()}
	sort.Strings(names)
	assert.Equal(t, []string{"not started", "running", "stopped"}, names)
}
