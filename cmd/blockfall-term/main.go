// Command blockfall-term plays the falling-block game in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/logging"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the piece supply.")
	scores := flag.String("scores", "blockfall-scores.json", "High score file.")
	logFile := flag.String("log", filepath.Join(os.TempDir(), "blockfall-term.log"), "Log file.")
	logLevel := flag.String("log-level", "info", "Log level.")
	sound := flag.Bool("sound", false, "Play sound cues.")
	fps := flag.Int("fps", 60, "Frames per second.")
	flag.Parse()

	logger, err := logging.New(logging.Options{File: *logFile, Level: *logLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *seed, *scores, *sound, *fps); err != nil {
		logger.Error("terminal session", zap.Error(err))
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, seed uint64, scores string, sound bool, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	opts := []game.Option{
		game.WithSeed(seed),
		game.WithLogger(logger),
		game.WithHighScores(highscore.NewFile(scores)),
		game.WithRenderer(game.RendererFunc(func(s game.Snapshot) { render(screen, s) })),
	}
	if sound {
		player := audio.NewPlayer(0.4, logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer player.Close()
			opts = append(opts, game.WithListener(player.Listen))
		}
	}

	session, err := game.New(opts...)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	logger.Info("terminal session started", zap.Uint64("seed", seed))
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				sent, quit := eventsFor(ev)
				if quit {
					logger.Info("terminal session ended", zap.Int("score", session.Progress().Score))
					return nil
				}
				for _, e := range sent {
					session.Send(e)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			session.Update(now.Sub(last))
			last = now
		}
	}
}
