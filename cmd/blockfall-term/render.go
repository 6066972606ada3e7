package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

var kindColors = [game.NumKinds]tcell.Color{
	game.OrangeRicky:  tcell.ColorOrange,
	game.BlueRicky:    tcell.ColorBlue,
	game.ClevelandZ:   tcell.ColorRed,
	game.RhodeIslandZ: tcell.ColorGreen,
	game.Hero:         tcell.ColorAqua,
	game.Teewee:       tcell.ColorPurple,
	game.SmashBoy:     tcell.ColorYellow,
}

var (
	borderStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	settledStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	flashStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	ghostStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle    = tcell.StyleDefault
)

const (
	originX = 2
	originY = 1
)

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, line := range strings.Split(text, "\n") {
		col := x
		for _, r := range line {
			screen.SetContent(col, y+i, r, nil, style)
			col++
		}
	}
}

// drawBlock paints one board cell, two terminal columns wide.
func drawBlock(screen tcell.Screen, col, row int, r rune, style tcell.Style) {
	x := originX + 1 + col*2
	y := originY + row
	screen.SetContent(x, y, r, nil, style)
	screen.SetContent(x+1, y, r, nil, style)
}

func render(screen tcell.Screen, snap game.Snapshot) {
	screen.Clear()

	right := originX + 1 + snap.Width*2
	bottom := originY + snap.Height
	for row := originY; row < bottom; row++ {
		screen.SetContent(originX, row, '│', nil, borderStyle)
		screen.SetContent(right, row, '│', nil, borderStyle)
	}
	for x := originX; x <= right; x++ {
		screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	screen.SetContent(originX, bottom, '└', nil, borderStyle)
	screen.SetContent(right, bottom, '┘', nil, borderStyle)

	if p := snap.Piece; p != nil {
		for _, c := range p.Shape.Cells() {
			if row := p.Ghost.Row + c.Row; row >= 0 {
				drawBlock(screen, p.Ghost.Col+c.Col, row, '░', ghostStyle)
			}
		}
	}

	for row := range snap.Height {
		for col := range snap.Width {
			switch {
			case snap.IsClearing(row):
				drawBlock(screen, col, row, '█', flashStyle)
			case snap.Cells[row][col]:
				drawBlock(screen, col, row, '█', settledStyle)
			}
		}
	}

	if p := snap.Piece; p != nil {
		style := tcell.StyleDefault.Foreground(kindColors[p.Kind])
		for _, c := range p.Shape.Cells() {
			if row := p.Pos.Row + c.Row; row >= 0 {
				drawBlock(screen, p.Pos.Col+c.Col, row, '█', style)
			}
		}
	}

	panel := right + 3
	drawText(screen, panel, originY, textStyle, "NEXT")
	nextStyle := tcell.StyleDefault.Foreground(kindColors[snap.Next])
	for _, c := range snap.NextShape.Cells() {
		screen.SetContent(panel+c.Col*2, originY+2+c.Row, '█', nil, nextStyle)
		screen.SetContent(panel+c.Col*2+1, originY+2+c.Row, '█', nil, nextStyle)
	}

	hud := fmt.Sprintf("SCORE %d\nHIGH  %d\nLEVEL %d\nSPEED %d\nLINES %d",
		snap.Score, snap.HighScore, snap.Level, snap.Speed, snap.Lines)
	drawText(screen, panel, originY+7, textStyle, hud)
	drawText(screen, panel, originY+13, borderStyle, "←→/hl move  ↓/j drop\n↑/k/x rotate  z back\nspace hard drop\np pause  r restart\nq quit")

	switch {
	case snap.GameOver:
		drawText(screen, originX+snap.Width-4, originY+snap.Height/2, flashStyle, " GAME OVER ")
	case snap.Paused:
		drawText(screen, originX+snap.Width-2, originY+snap.Height/2, flashStyle, " PAUSED ")
	}

	screen.Show()
}
