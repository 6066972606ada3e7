package engine_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimersAfter(t *testing.T) {
	timers := engine.NewTimers()

	fired := 0
	id := timers.After(100*time.Millisecond, func() { fired++ })
	assert.True(t, timers.Active(id))
	assert.Equal(t, 1, timers.Len())

	assert.Equal(t, 0, timers.Advance(99*time.Millisecond))
	assert.Equal(t, 0, fired)

	assert.Equal(t, 1, timers.Advance(time.Millisecond))
	assert.Equal(t, 1, fired)
	assert.False(t, timers.Active(id))
	assert.Equal(t, 0, timers.Len())

	timers.Advance(time.Second)
	assert.Equal(t, 1, fired, "one-shot timers fire once")
	assert.Equal(t, 1100*time.Millisecond, timers.Now())
}

func TestTimersEveryCatchesUp(t *testing.T) {
	timers := engine.NewTimers()

	var at []time.Duration
	timers.Every(20*time.Millisecond, func() { at = append(at, timers.Now()) })

	timers.Advance(65 * time.Millisecond)
	assert.Equal(t, []time.Duration{20 * time.Millisecond, 40 * time.Millisecond, 60 * time.Millisecond}, at)

	timers.Advance(15 * time.Millisecond)
	assert.Len(t, at, 4)
	assert.Equal(t, 80*time.Millisecond, at[3])
}

func TestTimersFireInDueOrder(t *testing.T) {
	timers := engine.NewTimers()

	var order []string
	timers.After(30*time.Millisecond, func() { order = append(order, "c") })
	timers.After(10*time.Millisecond, func() { order = append(order, "a") })
	timers.After(10*time.Millisecond, func() { order = append(order, "b") })

	timers.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestTimersChainedFromCallback(t *testing.T) {
	timers := engine.NewTimers()

	var stages []time.Duration
	timers.After(200*time.Millisecond, func() {
		stages = append(stages, timers.Now())
		timers.After(300*time.Millisecond, func() {
			stages = append(stages, timers.Now())
			timers.After(100*time.Millisecond, func() {
				stages = append(stages, timers.Now())
			})
		})
	})

	timers.Advance(550 * time.Millisecond)
	require.Len(t, stages, 2)
	assert.Equal(t, 200*time.Millisecond, stages[0])
	assert.Equal(t, 500*time.Millisecond, stages[1])

	timers.Advance(50 * time.Millisecond)
	require.Len(t, stages, 3)
	assert.Equal(t, 600*time.Millisecond, stages[2])
}

func TestTimersCancel(t *testing.T) {
	timers := engine.NewTimers()

	fired := false
	id := timers.After(10*time.Millisecond, func() { fired = true })
	assert.True(t, timers.Cancel(id))
	assert.False(t, timers.Cancel(id))
	assert.False(t, timers.Cancel(0))

	timers.Advance(time.Second)
	assert.False(t, fired)
}

func TestTimersCancelFromOwnCallback(t *testing.T) {
	timers := engine.NewTimers()

	count := 0
	var id engine.TimerID
	id = timers.Every(10*time.Millisecond, func() {
		count++
		if count == 2 {
			timers.Cancel(id)
		}
	})

	timers.Advance(time.Second)
	assert.Equal(t, 2, count)
	assert.False(t, timers.Active(id))
}

func TestTimersCancelSiblingFromCallback(t *testing.T) {
	timers := engine.NewTimers()

	var sibling engine.TimerID
	siblingFired := false
	timers.After(10*time.Millisecond, func() { timers.Cancel(sibling) })
	sibling = timers.After(20*time.Millisecond, func() { siblingFired = true })

	timers.Advance(time.Second)
	assert.False(t, siblingFired)
}

func TestTimersResetAndIds(t *testing.T) {
	timers := engine.NewTimers()

	first := timers.After(time.Millisecond, func() {})
	timers.Every(time.Millisecond, func() {})
	timers.Advance(5 * time.Millisecond)

	timers.Reset()
	assert.Equal(t, 0, timers.Len())
	assert.Equal(t, 5*time.Millisecond, timers.Now(), "reset keeps the clock")

	next := timers.After(time.Millisecond, func() {})
	assert.Greater(t, uint64(next), uint64(first), "ids are never reused")

	due, ok := timers.Due(next)
	assert.True(t, ok)
	assert.Equal(t, 6*time.Millisecond, due)
}

func TestTimersPanicsOnInvalidInterval(t *testing.T) {
	timers := engine.NewTimers()
	assert.Panics(t, func() { timers.Every(0, func() {}) })
	assert.Panics(t, func() { timers.After(time.Second, nil) })
}
