package engine

import "time"

// Frame is the per-frame context handed to every system.
type Frame struct {
	Delta    time.Duration
	Index    uint64
	Commands *Commands
	Timers   *Timers
}

func newFrame(dt time.Duration, index uint64, timers *Timers) *Frame {
	return &Frame{
		Delta:    dt,
		Index:    index,
		Commands: newCommands(),
		Timers:   timers,
	}
}
