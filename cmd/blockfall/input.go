package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/game"
)

// binding maps a key to the event sent when it goes down. Held bindings also
// send release when the key goes up.
type binding struct {
	key     ebiten.Key
	press   game.Event
	release game.Event
	held    bool
}

var bindings = []binding{
	{key: ebiten.KeyLeft, press: game.MoveLeftStart, release: game.MoveLeftStop, held: true},
	{key: ebiten.KeyRight, press: game.MoveRightStart, release: game.MoveRightStop, held: true},
	{key: ebiten.KeyDown, press: game.SoftDropStart, release: game.SoftDropStop, held: true},
	{key: ebiten.KeyUp, press: game.Rotate},
	{key: ebiten.KeyX, press: game.Rotate},
	{key: ebiten.KeyZ, press: game.RotateCounterClockwise},
	{key: ebiten.KeySpace, press: game.HardDrop},
	{key: ebiten.KeyP, press: game.PauseToggle},
	{key: ebiten.KeyR, press: game.Restart},
}

// decode turns this tick's key transitions into session events. Releases are
// reported before presses, so rolling from one key to another within a tick
// reaches the session as the old stop followed by the new start.
func decode(justPressed, justReleased func(ebiten.Key) bool) []game.Event {
	var events []game.Event
	for _, b := range bindings {
		if b.held && justReleased(b.key) {
			events = append(events, b.release)
		}
	}
	for _, b := range bindings {
		if justPressed(b.key) {
			events = append(events, b.press)
		}
	}
	return events
}
