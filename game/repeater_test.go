package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/blockfall/engine"
)

func newRepeaterFixture(kind Kind, col, row int) (*engine.Timers, *Piece, *Repeater) {
	timers := engine.NewTimers()
	g := NewGrid(10, 20)
	p := placed(kind, g, col, row)
	r := NewRepeater(timers, 250*time.Millisecond, 20*time.Millisecond, func() *Piece { return p })
	p.OnDisable(r.ReleaseAll)
	return timers, p, r
}

func TestRepeaterHold(t *testing.T) {
	timers, p, r := newRepeaterFixture(SmashBoy, 4, 5)

	r.Hold(AxisX, -1)
	assert.Equal(t, 3, p.Position().Col, "first step is immediate")
	assert.Equal(t, -1, r.Held(AxisX))

	timers.Advance(249 * time.Millisecond)
	assert.Equal(t, 3, p.Position().Col)
	timers.Advance(time.Millisecond)
	assert.Equal(t, 2, p.Position().Col)

	timers.Advance(time.Second)
	assert.Equal(t, 0, p.Position().Col, "stops at the wall")
	assert.True(t, r.Active(AxisX), "still held against the wall")

	r.Release(AxisX)
	assert.False(t, r.Active(AxisX))
	assert.Zero(t, timers.Len())
}

func TestRepeaterOneTimerPerAxis(t *testing.T) {
	timers, p, r := newRepeaterFixture(SmashBoy, 4, 5)

	r.Hold(AxisX, 1)
	r.Hold(AxisX, 1)
	r.Hold(AxisX, -1)
	assert.Equal(t, 1, timers.Len())
	assert.Equal(t, -1, r.Held(AxisX))
	assert.Equal(t, 5, p.Position().Col, "each hold steps once")

	r.Hold(AxisY, 1)
	assert.Equal(t, 2, timers.Len())

	r.Hold(AxisX, 0)
	assert.False(t, r.Active(AxisX))
	assert.True(t, r.Active(AxisY))
}

func TestRepeaterReleaseIf(t *testing.T) {
	_, _, r := newRepeaterFixture(SmashBoy, 4, 5)

	r.Hold(AxisX, -1)
	r.Hold(AxisX, 1)
	r.ReleaseIf(AxisX, -1)
	assert.True(t, r.Active(AxisX), "releasing the old direction keeps the new one")

	r.ReleaseIf(AxisX, 1)
	assert.False(t, r.Active(AxisX))
}

func TestRepeaterSoftDropLocks(t *testing.T) {
	timers, p, r := newRepeaterFixture(SmashBoy, 4, 10)

	r.Hold(AxisX, 1)
	r.Hold(AxisY, 1)
	assert.Equal(t, 11, p.Position().Row)

	timers.Advance(time.Second)
	assert.Equal(t, 18, p.Position().Row)
	assert.Equal(t, PieceLocked, p.State())
	assert.False(t, r.Active(AxisX), "disabling the piece releases every axis")
	assert.False(t, r.Active(AxisY))
	assert.Zero(t, timers.Len())
}

func TestRepeaterSelfCancels(t *testing.T) {
	timers := engine.NewTimers()
	g := NewGrid(10, 20)
	p := placed(SmashBoy, g, 4, 5)
	r := NewRepeater(timers, 250*time.Millisecond, 20*time.Millisecond, func() *Piece { return p })

	r.Hold(AxisX, 1)
	p.Lock()
	assert.True(t, r.Active(AxisX))

	timers.Advance(250 * time.Millisecond)
	assert.False(t, r.Active(AxisX))
	assert.Zero(t, timers.Len())
}

func TestRepeaterIgnoresDisabledPiece(t *testing.T) {
	timers, p, r := newRepeaterFixture(SmashBoy, 4, 5)
	p.Lock()

	r.Hold(AxisX, 1)
	assert.False(t, r.Active(AxisX))
	assert.Zero(t, timers.Len())
}
