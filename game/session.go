// Package game implements the falling-block rules: the settled grid, the
// active piece, held-key repeat and the board controller that ties them to a
// frame loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/highscore"
)

// Session is one game: grid, active piece, progression and the timers that
// drive them. A session is not safe for concurrent use; Send and Update must be
// called from the same goroutine.
type Session struct {
	cfg       Config
	log       *zap.Logger
	scores    highscore.Store
	renderer  Renderer
	listeners []Listener

	scheduler *engine.Scheduler
	timers    *engine.Timers
	grid      *Grid
	supply    *Supply
	piece     *Piece
	repeat    *Repeater

	progress  Progress
	paused    bool
	over      bool
	cascading bool
	clearing  []int
	highDirty bool

	gravity  engine.TimerID
	interval time.Duration
	stage    engine.TimerID

	inbox   []Event
	notices []Notice
}

// Stats is a debugging view of the session internals.
type Stats struct {
	Frames          uint64
	Now             time.Duration
	Timers          int
	Cascading       bool
	Clearing        []int
	GravityInterval time.Duration
	PieceState      PieceState
	HasPiece        bool
	HeldX           int
	HeldY           int
	Pending         int
}

// New creates a session and starts the first game.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		cfg: DefaultConfig(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if s.supply == nil {
		s.supply = NewSupply(uint64(time.Now().UnixNano()))
	}

	s.timers = engine.NewTimers()
	s.scheduler = engine.NewScheduler(s.timers)
	s.scheduler.Register(&inputSystem{session: s})
	s.scheduler.Register(&clockSystem{})
	s.scheduler.Register(&lockSystem{session: s})
	s.scheduler.Register(&snapshotSystem{session: s})

	s.grid = NewGrid(s.cfg.Width, s.cfg.Height)
	s.repeat = NewRepeater(s.timers, s.cfg.HorizontalRepeat, s.cfg.VerticalRepeat, func() *Piece {
		return s.piece
	})

	s.loadHighScore()
	s.Reset()
	return s, nil
}

// Reset cancels every pending timer, empties the grid, zeroes progression and
// spawns the first piece. The high score is kept.
func (s *Session) Reset() {
	s.timers.Reset()
	s.repeat.ReleaseAll()
	s.grid.Clear()

	s.progress = Progress{
		HighScore: s.progress.HighScore,
		Level:     1,
		Speed:     1,
	}
	s.paused = false
	s.over = false
	s.cascading = false
	s.clearing = nil
	s.stage = 0
	s.piece = nil

	s.supply.Restart()
	s.log.Info("game reset", zap.Int("high_score", s.progress.HighScore))
	s.notify(Notice{Kind: NoticeReset})

	s.spawn()
	s.armGravity()
}

// Send queues an input event for the next frame.
func (s *Session) Send(e Event) {
	s.inbox = append(s.inbox, e)
}

// Update runs one frame: queued input, then timers advanced by dt, then lock and
// line-clear evaluation, then the render request.
func (s *Session) Update(dt time.Duration) {
	s.scheduler.Once(dt)
}

// TogglePause flips the pause flag and releases held movement. A finished game
// cannot be paused.
func (s *Session) TogglePause() {
	if s.over {
		return
	}
	s.paused = !s.paused
	s.repeat.ReleaseAll()
	s.log.Debug("pause toggled", zap.Bool("paused", s.paused))
}

func (s *Session) IsGameOver() bool   { return s.over }
func (s *Session) IsPaused() bool     { return s.paused }
func (s *Session) IsClearing() bool   { return s.cascading }
func (s *Session) Progress() Progress { return s.progress }
func (s *Session) Grid() *Grid        { return s.grid }

// Piece returns the active piece, or nil between a clear and the next spawn and
// after game over.
func (s *Session) Piece() *Piece { return s.piece }

func (s *Session) Config() Config { return s.cfg }

// Next returns the previewed kind.
func (s *Session) Next() Kind { return s.supply.Peek() }

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot(s.scheduler.Frames())
}

func (s *Session) Stats() Stats {
	st := Stats{
		Frames:          s.scheduler.Frames(),
		Now:             s.timers.Now(),
		Timers:          s.timers.Len(),
		Cascading:       s.cascading,
		Clearing:        append([]int(nil), s.clearing...),
		GravityInterval: s.interval,
		HeldX:           s.repeat.Held(AxisX),
		HeldY:           s.repeat.Held(AxisY),
		Pending:         len(s.inbox),
	}
	if s.piece != nil {
		st.HasPiece = true
		st.PieceState = s.piece.State()
	}
	return st
}

func (s *Session) SchedulerStats() *engine.SchedulerStats {
	return s.scheduler.GetStats()
}

func (s *Session) snapshot(frame uint64) Snapshot {
	next := s.supply.Peek()
	snap := Snapshot{
		Frame:     frame,
		Width:     s.grid.Width(),
		Height:    s.grid.Height(),
		Cells:     s.grid.Cells(),
		Next:      next,
		NextShape: next.Shape(),
		Progress:  s.progress,
		Paused:    s.paused,
		GameOver:  s.over,
		Clearing:  append([]int(nil), s.clearing...),
	}
	// A piece locked this frame stays visible until the lock system merges it.
	if s.piece != nil {
		pos := s.piece.Position()
		snap.Piece = &PieceView{
			Kind:  s.piece.Kind(),
			Shape: s.piece.Shape().Clone(),
			Pos:   pos,
			Ghost: pos.Add(0, s.piece.DropDistance()),
		}
	}
	return snap
}

func (s *Session) handle(e Event) {
	switch e {
	case Restart:
		s.Reset()
		return
	case PauseToggle:
		s.TogglePause()
		return
	case MoveLeftStop:
		s.repeat.ReleaseIf(AxisX, -1)
		return
	case MoveRightStop:
		s.repeat.ReleaseIf(AxisX, 1)
		return
	case SoftDropStop:
		s.repeat.ReleaseIf(AxisY, 1)
		return
	}

	if s.over || s.paused || s.piece == nil || !s.piece.Enabled() {
		return
	}

	switch e {
	case MoveLeftStart:
		s.repeat.Hold(AxisX, -1)
	case MoveRightStart:
		s.repeat.Hold(AxisX, 1)
	case SoftDropStart:
		s.repeat.Hold(AxisY, 1)
	case Rotate:
		s.piece.Rotate(true)
	case RotateCounterClockwise:
		s.piece.Rotate(false)
	case HardDrop:
		s.piece.HardDrop()
	}
}

func (s *Session) spawn() {
	kind := s.supply.Take()
	piece := NewPiece(kind, s.grid, s.cfg.Width/2)
	piece.OnDisable(s.repeat.ReleaseAll)
	s.piece = piece

	s.log.Debug("piece spawned", zap.Stringer("kind", kind), zap.Stringer("next", s.supply.Peek()))
	s.notify(Notice{Kind: NoticeSpawn, Piece: kind})

	if piece.CollidesWithGrid(0, 0) {
		piece.Lock()
	}
}

func (s *Session) armGravity() {
	s.timers.Cancel(s.gravity)
	s.interval = DropInterval(s.cfg.BaseInterval, s.cfg.StepFraction, s.progress.Speed, s.cfg.MinInterval)
	s.gravity = s.timers.Every(s.interval, s.fall)
}

func (s *Session) fall() {
	if s.paused || s.cascading || s.over || s.piece == nil {
		return
	}
	s.piece.DropOne()
}

// settle merges a disabled piece and either ends the game, spawns the next
// piece or starts a line-clear cascade.
func (s *Session) settle() {
	piece := s.piece
	s.piece = nil
	s.merge(piece)

	if piece.State() == PieceGameOver {
		s.gameOver(piece)
		return
	}

	s.log.Debug("piece locked", zap.Stringer("kind", piece.Kind()), zap.Int("row", piece.Position().Row))
	s.notify(Notice{Kind: NoticeLock, Piece: piece.Kind()})

	full, _ := s.grid.Partition()
	if len(full) == 0 {
		s.spawn()
		return
	}
	s.clear(full)
}

func (s *Session) merge(piece *Piece) {
	for _, c := range piece.Cells() {
		if c.Col < 0 || c.Col >= s.grid.Width() || c.Row < 0 || c.Row >= s.grid.Height() {
			continue
		}
		s.grid.Set(c.Col, c.Row, true)
	}
}

func (s *Session) clear(full []int) {
	k := len(full)
	s.cascading = true
	s.clearing = full

	s.progress.Lines += k
	s.progress.Score += ClearScore(s.cfg.UnitScore, k)
	if s.progress.Score > s.progress.HighScore {
		s.progress.HighScore = s.progress.Score
		s.highDirty = true
	}

	prevLevel, prevSpeed := s.progress.Level, s.progress.Speed
	s.progress.Level = LevelFor(s.progress.Score, s.cfg.LevelThreshold)
	s.progress.Speed = SpeedFor(s.progress.Level, s.cfg.SpeedThreshold, s.cfg.MaxSpeed)

	s.log.Info("rows cleared",
		zap.Ints("rows", full),
		zap.Int("score", s.progress.Score),
		zap.Int("lines", s.progress.Lines))
	s.notify(Notice{Kind: NoticeClear, Lines: k, Score: s.progress.Score, Level: s.progress.Level})

	if s.progress.Level > prevLevel {
		s.log.Info("level up", zap.Int("level", s.progress.Level), zap.Int("speed", s.progress.Speed))
		s.notify(Notice{Kind: NoticeLevelUp, Score: s.progress.Score, Level: s.progress.Level})
	}
	if s.progress.Speed != prevSpeed {
		s.armGravity()
	}

	flash := s.cfg.FlashDelay
	collapse := s.cfg.CollapseDelay - s.cfg.FlashDelay
	resume := s.cfg.ResumeDelay - s.cfg.CollapseDelay

	s.stage = s.timers.After(flash, func() {
		for _, row := range full {
			s.grid.ClearRow(row)
		}
		s.stage = s.timers.After(collapse, func() {
			s.grid.RemoveRows(full...)
			s.stage = s.timers.After(resume, func() {
				s.stage = 0
				s.cascading = false
				s.clearing = nil
				s.spawn()
			})
		})
	})
}

func (s *Session) gameOver(piece *Piece) {
	s.over = true
	s.timers.Cancel(s.gravity)
	s.gravity = 0
	s.repeat.ReleaseAll()

	s.log.Info("game over",
		zap.Stringer("kind", piece.Kind()),
		zap.Int("score", s.progress.Score),
		zap.Int("high_score", s.progress.HighScore))
	s.notify(Notice{Kind: NoticeGameOver, Piece: piece.Kind(), Score: s.progress.Score, Level: s.progress.Level})
}

func (s *Session) notify(n Notice) {
	s.notices = append(s.notices, n)
}

func (s *Session) loadHighScore() {
	if s.scores == nil {
		return
	}
	score, err := s.scores.Load(s.cfg.GameID)
	if err != nil {
		s.log.Warn("load high score", zap.String("game", s.cfg.GameID), zap.Error(err))
		return
	}
	s.progress.HighScore = score
}

func (s *Session) saveHighScore() {
	if s.scores == nil || !s.highDirty {
		return
	}
	s.highDirty = false
	if err := s.scores.Save(s.cfg.GameID, s.progress.HighScore); err != nil {
		s.log.Warn("save high score", zap.String("game", s.cfg.GameID), zap.Error(err))
	}
}
