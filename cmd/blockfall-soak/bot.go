package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

var botMoves = []game.Event{
	game.MoveLeftStart,
	game.MoveLeftStop,
	game.MoveRightStart,
	game.MoveRightStop,
	game.SoftDropStart,
	game.SoftDropStop,
	game.Rotate,
	game.RotateCounterClockwise,
	game.HardDrop,
}

// bot mashes random keys. rate is the chance of an input on a given frame.
type bot struct {
	rng  *rand.Rand
	rate float64
}

func newBot(seed uint64, rate float64) *bot {
	return &bot{
		rng:  rand.New(rand.NewPCG(seed, seed+1)),
		rate: rate,
	}
}

func (b *bot) next() (game.Event, bool) {
	if b.rng.Float64() >= b.rate {
		return 0, false
	}
	return botMoves[b.rng.IntN(len(botMoves))], true
}
