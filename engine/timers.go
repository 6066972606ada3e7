package engine

import (
	"time"

	"github.com/kamstrup/intmap"
)

// TimerID is a handle to a deferred callback. Ids are never reused, so a stale
// handle can always be cancelled safely.
type TimerID uint64

type timer struct {
	id    TimerID
	due   time.Duration
	every time.Duration
	fn    func()
}

// Timers is a cooperative table of deferred callbacks. Nothing fires on its own:
// time only moves when Advance is called, and callbacks run on the caller's goroutine.
type Timers struct {
	now    time.Duration
	nextID TimerID
	table  *intmap.Map[TimerID, *timer]
	order  []TimerID
}

// NewTimers creates an empty timer table with its clock at zero.
func NewTimers() *Timers {
	return &Timers{
		table: intmap.New[TimerID, *timer](16),
	}
}

// Now returns the virtual time of the table.
func (t *Timers) Now() time.Duration {
	return t.now
}

// After schedules fn to run once, d after Now.
func (t *Timers) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	return t.add(d, 0, fn)
}

// Every schedules fn to run every d, first at Now+d. d must be positive.
func (t *Timers) Every(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		panic("engine: recurring timer interval must be positive")
	}
	return t.add(d, d, fn)
}

func (t *Timers) add(d, every time.Duration, fn func()) TimerID {
	if fn == nil {
		panic("engine: timer callback must not be nil")
	}
	t.nextID++
	tm := &timer{
		id:    t.nextID,
		due:   t.now + d,
		every: every,
		fn:    fn,
	}
	t.table.Put(tm.id, tm)
	t.order = append(t.order, tm.id)
	return tm.id
}

// Cancel removes a pending timer. It is safe to call from inside any callback,
// including the cancelled timer's own. Returns false if id was not pending.
func (t *Timers) Cancel(id TimerID) bool {
	if id == 0 {
		return false
	}
	return t.table.Del(id)
}

// Active reports whether id is still pending.
func (t *Timers) Active(id TimerID) bool {
	if id == 0 {
		return false
	}
	return t.table.Has(id)
}

// Due returns the next due time of a pending timer.
func (t *Timers) Due(id TimerID) (time.Duration, bool) {
	tm, ok := t.table.Get(id)
	if !ok {
		return 0, false
	}
	return tm.due, true
}

// Len returns the number of pending timers.
func (t *Timers) Len() int {
	return t.table.Len()
}

// Reset cancels every pending timer. The clock keeps its value.
func (t *Timers) Reset() {
	t.table.Clear()
	t.order = t.order[:0]
}

// Advance moves the clock forward by d, firing every timer that falls due on the
// way in (due, creation) order. While a callback runs, Now reports that timer's
// due time, so timers scheduled from a callback are relative to when it fired.
// Returns the number of callbacks run.
func (t *Timers) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := t.now + d
	fired := 0

	for {
		next := t.nextDue(target)
		if next == nil {
			break
		}

		t.now = next.due
		if next.every > 0 {
			next.due += next.every
		} else {
			t.table.Del(next.id)
		}
		next.fn()
		fired++
	}

	t.now = target
	t.compact()
	return fired
}

func (t *Timers) nextDue(target time.Duration) *timer {
	var best *timer
	for _, id := range t.order {
		tm, ok := t.table.Get(id)
		if !ok || tm.due > target {
			continue
		}
		if best == nil || tm.due < best.due || (tm.due == best.due && tm.id < best.id) {
			best = tm
		}
	}
	return best
}

func (t *Timers) compact() {
	live := t.order[:0]
	for _, id := range t.order {
		if t.table.Has(id) {
			live = append(live, id)
		}
	}
	t.order = live
}
