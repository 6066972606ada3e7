package game

import "github.com/plus3/blockfall/engine"

// inputSystem applies queued events. It runs first so that a frame's render
// always reflects that frame's input.
type inputSystem struct {
	session *Session
}

func (inputSystem) Name() string { return "input" }

func (sys *inputSystem) Execute(frame *engine.Frame) {
	s := sys.session
	for i := 0; i < len(s.inbox); i++ {
		s.handle(s.inbox[i])
	}
	s.inbox = s.inbox[:0]
}

// clockSystem advances the timers: gravity, held-key repeat and cascade stages.
type clockSystem struct{}

func (clockSystem) Name() string { return "clock" }

func (sys *clockSystem) Execute(frame *engine.Frame) {
	frame.Timers.Advance(frame.Delta)
}

// lockSystem settles a disabled piece. It waits while paused and while a
// cascade is in flight, so two cascades never overlap.
type lockSystem struct {
	session *Session
}

func (lockSystem) Name() string { return "lock" }

func (sys *lockSystem) Execute(frame *engine.Frame) {
	s := sys.session
	if s.over || s.paused || s.cascading || s.piece == nil || s.piece.Enabled() {
		return
	}
	s.settle()
}

// snapshotSystem hands the frame to collaborators once every other system has run.
type snapshotSystem struct {
	session *Session
}

func (snapshotSystem) Name() string { return "snapshot" }

func (sys *snapshotSystem) Execute(frame *engine.Frame) {
	s := sys.session

	notices := s.notices
	s.notices = nil
	if len(notices) > 0 && len(s.listeners) > 0 {
		frame.Commands.Defer(func() {
			for _, n := range notices {
				for _, fn := range s.listeners {
					fn(n)
				}
			}
		})
	}

	if s.highDirty {
		frame.Commands.Defer(s.saveHighScore)
	}

	if s.renderer != nil {
		snap := s.snapshot(frame.Index)
		frame.Commands.Defer(func() {
			s.renderer.Render(snap)
		})
	}
}
