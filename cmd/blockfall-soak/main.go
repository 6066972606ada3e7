// Command blockfall-soak plays headless games with a random bot and reports
// frame timings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/logging"
)

type soakConfig struct {
	gameTime time.Duration
	step     time.Duration
	seed     uint64
	botRate  float64
}

func soak(cfg soakConfig, logger *zap.Logger, report *Report) {
	var session *game.Session
	session, err := game.New(
		game.WithSeed(cfg.seed),
		game.WithLogger(logger),
		game.WithListener(func(n game.Notice) {
			if n.Kind != game.NoticeGameOver {
				return
			}
			p := session.Progress()
			report.Games++
			report.TotalScore += p.Score
			report.TotalLines += p.Lines
			report.BestScore = max(report.BestScore, p.Score)
			session.Send(game.Restart)
		}),
	)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	b := newBot(cfg.seed, cfg.botRate)
	start := time.Now()
	for elapsed := time.Duration(0); elapsed < cfg.gameTime; elapsed += cfg.step {
		if e, ok := b.next(); ok {
			session.Send(e)
		}

		updateStart := time.Now()
		session.Update(cfg.step)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalFrames++
	}
	report.TotalTime = time.Since(start)
	report.Systems = session.SchedulerStats().Systems
}

func main() {
	gameTime := flag.Duration("duration", time.Hour, "Virtual game time to simulate.")
	step := flag.Duration("step", 16*time.Millisecond, "Frame step.")
	seed := flag.Uint64("seed", 1, "Seed for the piece supply and the bot.")
	botRate := flag.Float64("bot-rate", 0.2, "Chance of a bot input per frame.")
	logFile := flag.String("log", "", "Log file. Logs are discarded when empty.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *step <= 0 {
		log.Fatalf("step must be positive, got %s", *step)
	}

	logger := zap.NewNop()
	if *logFile != "" {
		l, err := logging.New(logging.Options{File: *logFile, Level: "info"})
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer l.Sync()
		logger = l
	}

	report := &Report{
		GameTime:       *gameTime,
		Step:           *step,
		Seed:           *seed,
		BotRate:        *botRate,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, int(*gameTime / *step)),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Simulating %s of play...\n", *gameTime)
	soak(soakConfig{gameTime: *gameTime, step: *step, seed: *seed, botRate: *botRate}, logger, report)

	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
