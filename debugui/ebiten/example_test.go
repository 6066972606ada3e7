package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

// Game implements ebiten.Game and draws the session inspector over the board.
type Game struct {
	session *game.Session
	ui      *engine.Scheduler
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())

	g.backend.BeginFrame()
	g.session.Update(dt)
	g.ui.Once(dt)
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board first.
	// ...

	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.New("blockfall inspector", 1280, 720)

	session, err := game.New()
	if err != nil {
		panic(err)
	}

	overlay := &debugui.Overlay{}
	overlay.Add(debugui.NewSessionPanel(session, 120).Render)

	ui := engine.NewScheduler(nil)
	ui.Register(overlay)

	g := &Game{
		session: session,
		ui:      ui,
		backend: backend,
	}
	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
