package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/game"
)

var (
	backgroundColor = color.RGBA{R: 29, G: 29, B: 41, A: 255}
	wellColor       = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	borderColor     = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	settledColor    = color.RGBA{R: 140, G: 140, B: 160, A: 255}
	flashColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ghostColor      = color.RGBA{R: 200, G: 200, B: 200, A: 110}
	shadeColor      = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

var kindColors = [game.NumKinds]color.RGBA{
	game.OrangeRicky:  {R: 255, G: 161, B: 0, A: 255},
	game.BlueRicky:    {R: 0, G: 98, B: 255, A: 255},
	game.ClevelandZ:   {R: 230, G: 41, B: 55, A: 255},
	game.RhodeIslandZ: {R: 0, G: 228, B: 48, A: 255},
	game.Hero:         {R: 102, G: 191, B: 255, A: 255},
	game.Teewee:       {R: 200, G: 122, B: 255, A: 255},
	game.SmashBoy:     {R: 253, G: 249, B: 0, A: 255},
}

const (
	margin     = 20
	panelWidth = 160
)

func screenSize(cfg game.Config, cell int) (int, int) {
	return cfg.Width*cell + panelWidth + 3*margin, cfg.Height*cell + 2*margin
}

func drawCell(screen *ebiten.Image, col, row, cell int, ox, oy float32, c color.Color) {
	x := ox + float32(col*cell)
	y := oy + float32(row*cell)
	vector.DrawFilledRect(screen, x+1, y+1, float32(cell-2), float32(cell-2), c, false)
}

func drawSnapshot(screen *ebiten.Image, snap game.Snapshot, cell int) {
	screen.Fill(backgroundColor)

	ox, oy := float32(margin), float32(margin)
	w, h := float32(snap.Width*cell), float32(snap.Height*cell)
	vector.DrawFilledRect(screen, ox, oy, w, h, wellColor, false)
	vector.StrokeRect(screen, ox-1, oy-1, w+2, h+2, 1, borderColor, false)

	for row := range snap.Height {
		for col := range snap.Width {
			switch {
			case snap.IsClearing(row):
				drawCell(screen, col, row, cell, ox, oy, flashColor)
			case snap.Cells[row][col]:
				drawCell(screen, col, row, cell, ox, oy, settledColor)
			}
		}
	}

	if p := snap.Piece; p != nil {
		for _, c := range p.Shape.Cells() {
			gx := ox + float32((p.Ghost.Col+c.Col)*cell)
			gy := oy + float32((p.Ghost.Row+c.Row)*cell)
			if p.Ghost.Row+c.Row >= 0 {
				vector.StrokeRect(screen, gx+1, gy+1, float32(cell-2), float32(cell-2), 1, ghostColor, false)
			}
		}
		for _, c := range p.Shape.Cells() {
			if p.Pos.Row+c.Row >= 0 {
				drawCell(screen, p.Pos.Col+c.Col, p.Pos.Row+c.Row, cell, ox, oy, kindColors[p.Kind])
			}
		}
	}

	drawPanel(screen, snap, cell, ox+w+margin, oy)

	switch {
	case snap.GameOver:
		drawBanner(screen, ox, oy, w, h, "GAME OVER\n\nR to restart")
	case snap.Paused:
		drawBanner(screen, ox, oy, w, h, "PAUSED")
	}
}

func drawPanel(screen *ebiten.Image, snap game.Snapshot, cell int, x, y float32) {
	ebitenutil.DebugPrintAt(screen, "NEXT", int(x), int(y))

	preview := cell * 3 / 4
	for _, c := range snap.NextShape.Cells() {
		drawCell(screen, c.Col, c.Row, preview, x, y+20, kindColors[snap.Next])
	}

	hud := fmt.Sprintf("SCORE %d\nHIGH  %d\nLEVEL %d\nSPEED %d\nLINES %d",
		snap.Score, snap.HighScore, snap.Level, snap.Speed, snap.Lines)
	ebitenutil.DebugPrintAt(screen, hud, int(x), int(y)+20+5*preview)

	help := "<- -> move\nDown soft drop\nUp/X rotate\nZ rotate back\nSpace drop\nP pause  R restart"
	ebitenutil.DebugPrintAt(screen, help, int(x), int(y)+20+5*preview+90)
}

func drawBanner(screen *ebiten.Image, x, y, w, h float32, text string) {
	vector.DrawFilledRect(screen, x, y, w, h, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, text, int(x+w/2)-36, int(y+h/2)-16)
}
