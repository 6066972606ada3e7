// Package audio plays short synthesized cues for session notices.
package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/plus3/blockfall/game"
)

// Cue is a sound effect.
type Cue int

const (
	CueNone Cue = iota
	CueLock
	CueClear
	CueTetris
	CueLevelUp
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueTetris:
		return "tetris"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	default:
		return "none"
	}
}

// CueFor maps a session notice to its cue. Spawn and reset notices are silent.
func CueFor(n game.Notice) Cue {
	switch n.Kind {
	case game.NoticeLock:
		return CueLock
	case game.NoticeClear:
		if n.Lines >= 4 {
			return CueTetris
		}
		return CueClear
	case game.NoticeLevelUp:
		return CueLevelUp
	case game.NoticeGameOver:
		return CueGameOver
	default:
		return CueNone
	}
}

type note struct {
	freq float64
	d    time.Duration
}

var cueNotes = map[Cue][]note{
	CueLock:     {{196.00, 40 * time.Millisecond}},
	CueClear:    {{659.25, 60 * time.Millisecond}, {880.00, 90 * time.Millisecond}},
	CueTetris:   {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 60 * time.Millisecond}, {1046.50, 160 * time.Millisecond}},
	CueLevelUp:  {{440.00, 80 * time.Millisecond}, {554.37, 80 * time.Millisecond}, {659.25, 140 * time.Millisecond}},
	CueGameOver: {{392.00, 180 * time.Millisecond}, {311.13, 180 * time.Millisecond}, {261.63, 360 * time.Millisecond}},
}

var cueWaves = map[Cue]Wave{
	CueLock:     WaveTriangle,
	CueClear:    WaveSquare,
	CueTetris:   WaveSquare,
	CueLevelUp:  WaveSine,
	CueGameOver: WaveTriangle,
}

// Streamer builds the streamer for c, or nil for CueNone.
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = NewTone(n.freq, n.d, cueWaves[c], rate)
	}
	return withVolume(beep.Seq(parts...), volume)
}

// Duration returns the length of c.
func Duration(c Cue) time.Duration {
	var total time.Duration
	for _, n := range cueNotes[c] {
		total += n.d
	}
	return total
}
