package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

// Terminals report key presses but not releases, so a held key arrives as a
// stream of presses from the terminal's own autorepeat. Each press of a
// movement key is sent as a start immediately followed by a stop: one step,
// no session-side repeat.
func eventsFor(ev *tcell.EventKey) (events []game.Event, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyLeft:
		return []game.Event{game.MoveLeftStart, game.MoveLeftStop}, false
	case tcell.KeyRight:
		return []game.Event{game.MoveRightStart, game.MoveRightStop}, false
	case tcell.KeyDown:
		return []game.Event{game.SoftDropStart, game.SoftDropStop}, false
	case tcell.KeyUp:
		return []game.Event{game.Rotate}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch ev.Rune() {
	case 'q':
		return nil, true
	case 'h':
		return []game.Event{game.MoveLeftStart, game.MoveLeftStop}, false
	case 'l':
		return []game.Event{game.MoveRightStart, game.MoveRightStop}, false
	case 'j':
		return []game.Event{game.SoftDropStart, game.SoftDropStop}, false
	case 'k', 'x':
		return []game.Event{game.Rotate}, false
	case 'z':
		return []game.Event{game.RotateCounterClockwise}, false
	case ' ':
		return []game.Event{game.HardDrop}, false
	case 'p':
		return []game.Event{game.PauseToggle}, false
	case 'r':
		return []game.Event{game.Restart}, false
	}
	return nil, false
}
