package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/blockfall/highscore"
)

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunable rules of a session.
type Config struct {
	Width  int
	Height int

	UnitScore      int
	LevelThreshold int
	SpeedThreshold int
	MaxSpeed       int

	BaseInterval time.Duration
	StepFraction float64
	MinInterval  time.Duration

	HorizontalRepeat time.Duration
	VerticalRepeat   time.Duration

	// Cascade stages, all measured from the moment full rows are detected.
	FlashDelay    time.Duration
	CollapseDelay time.Duration
	ResumeDelay   time.Duration

	// GameID keys the high score in the store.
	GameID string
}

// DefaultConfig returns the classic 10×20 rules.
func DefaultConfig() Config {
	return Config{
		Width:            10,
		Height:           20,
		UnitScore:        10,
		LevelThreshold:   100,
		SpeedThreshold:   5,
		MaxSpeed:         10,
		BaseInterval:     time.Second,
		StepFraction:     0.1,
		MinInterval:      100 * time.Millisecond,
		HorizontalRepeat: 250 * time.Millisecond,
		VerticalRepeat:   20 * time.Millisecond,
		FlashDelay:       200 * time.Millisecond,
		CollapseDelay:    500 * time.Millisecond,
		ResumeDelay:      600 * time.Millisecond,
		GameID:           "nottetris",
	}
}

// Validate checks the config for values the rules cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < 4 || c.Height < 4:
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalidConfig, c.Width, c.Height)
	case c.UnitScore < 0:
		return fmt.Errorf("%w: negative unit score %d", ErrInvalidConfig, c.UnitScore)
	case c.LevelThreshold <= 0:
		return fmt.Errorf("%w: level threshold must be positive, got %d", ErrInvalidConfig, c.LevelThreshold)
	case c.SpeedThreshold <= 0:
		return fmt.Errorf("%w: speed threshold must be positive, got %d", ErrInvalidConfig, c.SpeedThreshold)
	case c.MaxSpeed < 0:
		return fmt.Errorf("%w: negative max speed %d", ErrInvalidConfig, c.MaxSpeed)
	case c.BaseInterval <= 0 || c.MinInterval <= 0:
		return fmt.Errorf("%w: gravity intervals must be positive", ErrInvalidConfig)
	case c.StepFraction < 0 || c.StepFraction >= 1:
		return fmt.Errorf("%w: step fraction %v outside [0,1)", ErrInvalidConfig, c.StepFraction)
	case c.HorizontalRepeat <= 0 || c.VerticalRepeat <= 0:
		return fmt.Errorf("%w: repeat cadences must be positive", ErrInvalidConfig)
	case c.FlashDelay < 0 || c.CollapseDelay < c.FlashDelay || c.ResumeDelay < c.CollapseDelay:
		return fmt.Errorf("%w: cascade delays must satisfy 0 <= flash <= collapse <= resume", ErrInvalidConfig)
	case c.GameID == "":
		return fmt.Errorf("%w: empty game id", ErrInvalidConfig)
	}
	return nil
}

// Option configures a Session.
type Option func(*Session)

// WithConfig replaces the default rules.
func WithConfig(cfg Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSeed seeds the random piece supply.
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.supply = NewSupply(seed)
	}
}

// WithPieces makes the supply cycle through kinds in order.
func WithPieces(kinds ...Kind) Option {
	return func(s *Session) {
		s.supply = NewSequenceSupply(kinds...)
	}
}

// WithHighScores persists the high score through store.
func WithHighScores(store highscore.Store) Option {
	return func(s *Session) {
		s.scores = store
	}
}

// WithRenderer receives a snapshot at the end of every frame.
func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithListener subscribes fn to session notices. It may be given more than once.
func WithListener(fn Listener) Option {
	return func(s *Session) {
		if fn != nil {
			s.listeners = append(s.listeners, fn)
		}
	}
}
