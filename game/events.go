package game

// Event is an abstract input already decoded from raw keys.
type Event uint8

const (
	MoveLeftStart Event = iota
	MoveLeftStop
	MoveRightStart
	MoveRightStop
	SoftDropStart
	SoftDropStop
	Rotate
	RotateCounterClockwise
	HardDrop
	PauseToggle
	Restart
)

var eventNames = [...]string{
	MoveLeftStart:          "move-left-start",
	MoveLeftStop:           "move-left-stop",
	MoveRightStart:         "move-right-start",
	MoveRightStop:          "move-right-stop",
	SoftDropStart:          "soft-drop-start",
	SoftDropStop:           "soft-drop-stop",
	Rotate:                 "rotate",
	RotateCounterClockwise: "rotate-ccw",
	HardDrop:               "hard-drop",
	PauseToggle:            "pause-toggle",
	Restart:                "restart",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}
