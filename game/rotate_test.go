package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryRotateSmashBoyIsInvariant(t *testing.T) {
	g := NewGrid(10, 20)
	p := NewPiece(SmashBoy, g, 5)
	start := p.Position()

	for range 4 {
		assert.True(t, p.Rotate(true))
		assert.True(t, SmashBoy.Shape().Equal(p.Shape()))
		assert.Equal(t, start, p.Position())
	}
}

func TestTryRotateRoundTrip(t *testing.T) {
	g := NewGrid(10, 20)
	for _, kind := range Kinds() {
		p := placed(kind, g, 3, 8)

		assert.True(t, p.Rotate(true))
		assert.True(t, p.Rotate(false))
		assert.True(t, kind.Shape().Equal(p.Shape()), "%s clockwise then back", kind)
		assert.Equal(t, Position{Col: 3, Row: 8}, p.Position())

		for range 4 {
			assert.True(t, p.Rotate(false))
		}
		assert.True(t, kind.Shape().Equal(p.Shape()), "%s four turns", kind)
	}
}

func TestTryRotateWallCorrection(t *testing.T) {
	g := NewGrid(10, 20)

	t.Run("left wall", func(t *testing.T) {
		got, ok := TryRotate(OrangeRicky.Shape(), Position{Col: -1, Row: 5}, g, true)
		assert.True(t, ok)
		assert.Equal(t, Position{Col: 0, Row: 5}, got.Pos)
		assert.True(t, OrangeRicky.Shape().Rotate(true).Equal(got.Shape))
	})

	t.Run("right wall", func(t *testing.T) {
		got, ok := TryRotate(Hero.Shape().Rotate(true), Position{Col: 8, Row: 5}, g, true)
		assert.True(t, ok)
		assert.Equal(t, Position{Col: 6, Row: 5}, got.Pos)
		for _, c := range got.Shape.Cells() {
			assert.Less(t, got.Pos.Col+c.Col, 10)
		}
	})

	t.Run("floor", func(t *testing.T) {
		got, ok := TryRotate(Hero.Shape(), Position{Col: 3, Row: 18}, g, true)
		assert.True(t, ok)
		assert.Equal(t, Position{Col: 3, Row: 16}, got.Pos)
	})
}

func TestTryRotateStackRecovery(t *testing.T) {
	t.Run("one row up", func(t *testing.T) {
		g := NewGrid(10, 20)
		g.Set(4, 7, true)

		got, ok := TryRotate(Teewee.Shape(), Position{Col: 3, Row: 5}, g, true)
		assert.True(t, ok)
		assert.Equal(t, Position{Col: 3, Row: 4}, got.Pos)
	})

	t.Run("revert", func(t *testing.T) {
		g := NewGrid(10, 20)
		g.Set(4, 7, true)
		g.Set(4, 4, true)

		original := Teewee.Shape()
		got, ok := TryRotate(original, Position{Col: 3, Row: 5}, g, true)
		assert.False(t, ok)
		assert.True(t, original.Equal(got.Shape))
		assert.Equal(t, Position{Col: 3, Row: 5}, got.Pos)
	})

	t.Run("piece unchanged on failure", func(t *testing.T) {
		g := NewGrid(10, 20)
		g.Set(4, 7, true)
		g.Set(4, 4, true)
		p := placed(Teewee, g, 3, 5)

		assert.False(t, p.Rotate(true))
		assert.True(t, Teewee.Shape().Equal(p.Shape()))
		assert.Equal(t, Position{Col: 3, Row: 5}, p.Position())
		assert.True(t, p.Enabled())
	})
}
