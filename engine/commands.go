package engine

// Commands buffers work that must happen after every system of a frame has run,
// such as render requests and collaborator notifications.
type Commands struct {
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	if fn == nil {
		return
	}
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Len reports the number of queued operations.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs all queued operations in FIFO order, resetting the buffer state.
// Operations queued while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i].fn()
	}
	c.defers = c.defers[:0]
}
