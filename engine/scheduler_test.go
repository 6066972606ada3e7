package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
)

type countingSystem struct {
	ExecuteCount int
	TotalTime    time.Duration
	seen         *[]string
	name         string
}

func (s *countingSystem) Execute(frame *engine.Frame) {
	s.ExecuteCount++
	s.TotalTime += frame.Delta
	if s.seen != nil {
		*s.seen = append(*s.seen, s.name)
	}
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		var seen []string
		scheduler := engine.NewScheduler(nil)

		input := &countingSystem{seen: &seen, name: "input"}
		gravity := &countingSystem{seen: &seen, name: "gravity"}
		render := &countingSystem{seen: &seen, name: "render"}

		scheduler.Register(input)
		scheduler.Register(gravity)
		scheduler.Register(render)

		scheduler.Once(16 * time.Millisecond)
		scheduler.Once(16 * time.Millisecond)

		expected := []string{"input", "gravity", "render", "input", "gravity", "render"}
		if len(seen) != len(expected) {
			t.Fatalf("expected %d executions, got %d", len(expected), len(seen))
		}
		for i := range expected {
			if seen[i] != expected[i] {
				t.Errorf("execution %d: expected %s, got %s", i, expected[i], seen[i])
			}
		}

		if scheduler.Frames() != 2 {
			t.Errorf("expected 2 frames, got %d", scheduler.Frames())
		}
	})

	t.Run("delta time accumulation", func(t *testing.T) {
		scheduler := engine.NewScheduler(nil)
		counter := &countingSystem{}
		scheduler.Register(counter)

		scheduler.Once(500 * time.Millisecond)
		scheduler.Once(250 * time.Millisecond)
		scheduler.Once(-time.Second)

		if counter.TotalTime != 750*time.Millisecond {
			t.Errorf("expected 750ms total, got %s", counter.TotalTime)
		}
	})

	t.Run("commands flushed after all systems", func(t *testing.T) {
		var seen []string
		scheduler := engine.NewScheduler(nil)

		scheduler.Register(engine.SystemFunc(func(frame *engine.Frame) {
			frame.Commands.Defer(func() { seen = append(seen, "deferred") })
			seen = append(seen, "first")
		}))
		scheduler.Register(engine.SystemFunc(func(frame *engine.Frame) {
			seen = append(seen, "second")
		}))

		scheduler.Once(time.Millisecond)

		expected := []string{"first", "second", "deferred"}
		for i := range expected {
			if seen[i] != expected[i] {
				t.Errorf("step %d: expected %s, got %s", i, expected[i], seen[i])
			}
		}
	})

	t.Run("frames share the scheduler timers", func(t *testing.T) {
		timers := engine.NewTimers()
		scheduler := engine.NewScheduler(timers)

		fired := 0
		timers.After(30*time.Millisecond, func() { fired++ })

		scheduler.Register(engine.SystemFunc(func(frame *engine.Frame) {
			frame.Timers.Advance(frame.Delta)
		}))

		scheduler.Once(20 * time.Millisecond)
		if fired != 0 {
			t.Errorf("timer fired early")
		}
		scheduler.Once(20 * time.Millisecond)
		if fired != 1 {
			t.Errorf("expected timer to fire once, got %d", fired)
		}
		if scheduler.Timers() != timers {
			t.Errorf("expected scheduler to expose its timers")
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := engine.NewScheduler(nil)
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if counter.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})
}

type namedSystem struct{}

func (namedSystem) Execute(*engine.Frame) {}
func (namedSystem) Name() string          { return "custom" }

func TestSchedulerStats(t *testing.T) {
	scheduler := engine.NewScheduler(nil)
	scheduler.Register(&countingSystem{})
	scheduler.Register(namedSystem{})

	stats := scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Fatalf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.Systems[0].MinDuration != 0 {
		t.Errorf("expected zero min duration before any execution, got %s", stats.Systems[0].MinDuration)
	}

	for range 3 {
		scheduler.Once(time.Millisecond)
	}

	stats = scheduler.GetStats()
	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 executions, got %d", stats.TotalExecutions)
	}
	if stats.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", stats.Frames)
	}
	if stats.Systems[0].Name != "countingSystem" {
		t.Errorf("expected reflected name, got %q", stats.Systems[0].Name)
	}
	if stats.Systems[1].Name != "custom" {
		t.Errorf("expected Name() override, got %q", stats.Systems[1].Name)
	}
	for _, s := range stats.Systems {
		if s.ExecutionCount != 3 {
			t.Errorf("%s: expected 3 executions, got %d", s.Name, s.ExecutionCount)
		}
		if s.MinDuration > s.MaxDuration {
			t.Errorf("%s: min %s greater than max %s", s.Name, s.MinDuration, s.MaxDuration)
		}
	}
}
