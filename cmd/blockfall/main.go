// Command blockfall plays the falling-block game in an Ebiten window.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/logging"
)

type app struct {
	session *game.Session
	last    game.Snapshot
	cell    int

	ui      *engine.Scheduler
	overlay *debugui.Overlay
	backend *debugui_ebiten.ImguiBackend
}

func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if a.backend != nil {
		a.backend.BeginFrame()
	}

	if a.overlay == nil || !a.overlay.Input.WantCaptureKeyboard {
		for _, e := range decode(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
			a.session.Send(e)
		}
	}
	a.session.Update(dt)

	if a.backend != nil {
		a.ui.Once(dt)
		a.backend.EndFrame()
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, a.last, a.cell)
	if a.backend != nil {
		a.backend.Overlay(screen)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenSize(a.session.Config(), a.cell)
}

func defaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "blockfall-scores.json"
	}
	return filepath.Join(dir, "blockfall", "highscores.json")
}

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece supply.")
	scores := flag.String("scores", defaultScoresPath(), "High score file.")
	logFile := flag.String("log", "", "Log file. Logs go to stderr when empty.")
	logLevel := flag.String("log-level", "info", "Log level.")
	cell := flag.Int("cell", 30, "Cell size in pixels.")
	sound := flag.Bool("sound", true, "Play sound cues.")
	debug := flag.Bool("debug", false, "Show the ImGui session inspector.")
	flag.Parse()

	logger, err := logging.New(logging.Options{File: *logFile, Level: *logLevel})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	a := &app{cell: *cell}
	opts := []game.Option{
		game.WithSeed(*seed),
		game.WithLogger(logger),
		game.WithHighScores(highscore.NewFile(*scores)),
		game.WithRenderer(game.RendererFunc(func(s game.Snapshot) { a.last = s })),
	}

	if *sound {
		player := audio.NewPlayer(0.4, logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer player.Close()
			opts = append(opts, game.WithListener(player.Listen))
		}
	}

	a.session, err = game.New(opts...)
	if err != nil {
		logger.Fatal("create session", zap.Error(err))
	}
	a.last = a.session.Snapshot()

	if *debug {
		a.backend = debugui_ebiten.New("blockfall", 1280, 720)
		a.overlay = &debugui.Overlay{}
		a.overlay.Add(debugui.NewSessionPanel(a.session, 120).Render)
		a.ui = engine.NewScheduler(nil)
		a.ui.Register(a.overlay)
	} else {
		w, h := screenSize(a.session.Config(), a.cell)
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("blockfall")
	}

	logger.Info("starting", zap.Uint64("seed", *seed), zap.String("scores", *scores), zap.Bool("debug", *debug))
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop", zap.Error(err))
	}
}
