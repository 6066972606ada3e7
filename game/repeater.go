package game

import (
	"time"

	"github.com/plus3/blockfall/engine"
)

// Axis selects which held direction a repeater slot drives.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Repeater turns held directions into repeated piece steps. Each axis owns at
// most one recurring timer.
type Repeater struct {
	timers  *engine.Timers
	cadence [2]time.Duration
	held    [2]int
	ids     [2]engine.TimerID
	target  func() *Piece
}

// NewRepeater creates a repeater stepping whatever piece target returns.
func NewRepeater(timers *engine.Timers, horizontal, vertical time.Duration, target func() *Piece) *Repeater {
	return &Repeater{
		timers:  timers,
		cadence: [2]time.Duration{horizontal, vertical},
		target:  target,
	}
}

// Hold steps the current piece once along axis and keeps stepping it every
// cadence until released. A zero dir releases the axis.
func (r *Repeater) Hold(axis Axis, dir int) {
	r.Release(axis)
	if dir == 0 {
		return
	}

	piece := r.target()
	if piece == nil || !piece.Enabled() {
		return
	}
	step(piece, axis, dir)
	if !piece.Enabled() {
		return
	}

	r.held[axis] = dir
	r.ids[axis] = r.timers.Every(r.cadence[axis], func() {
		if !piece.Enabled() {
			r.Release(axis)
			return
		}
		step(piece, axis, dir)
	})
}

// Held returns the direction currently held on axis.
func (r *Repeater) Held(axis Axis) int {
	return r.held[axis]
}

// Active reports whether axis has a live repeat timer.
func (r *Repeater) Active(axis Axis) bool {
	return r.timers.Active(r.ids[axis])
}

// Release stops repeating on axis.
func (r *Repeater) Release(axis Axis) {
	r.timers.Cancel(r.ids[axis])
	r.ids[axis] = 0
	r.held[axis] = 0
}

// ReleaseIf releases axis only when dir is the held direction, so letting go
// of one key does not cancel the opposite one pressed afterwards.
func (r *Repeater) ReleaseIf(axis Axis, dir int) {
	if r.held[axis] == dir {
		r.Release(axis)
	}
}

// ReleaseAll stops both axes.
func (r *Repeater) ReleaseAll() {
	r.Release(AxisX)
	r.Release(AxisY)
}

func step(piece *Piece, axis Axis, dir int) {
	if axis == AxisX {
		piece.MoveHorizontal(dir)
		return
	}
	piece.MoveVertical(dir)
}
