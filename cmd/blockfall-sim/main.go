package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/replay"
	"github.com/plus3/blockfall/shell"
	"github.com/plus3/blockfall/tetris"
)

type options struct {
	Config    config.Config
	Games     int
	MaxFrames int
	FrameStep time.Duration
	BotRate   float64
	RecordDir string
	GCPause   bool
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults apply when empty.")
	games := flag.Int("games", 20, "Number of bot games to play.")
	seed := flag.Uint64("seed", 1, "Seed of the first game; game i uses seed+i.")
	maxFrames := flag.Int("max-frames", 20000, "Frames after which an unfinished game is abandoned.")
	frameStep := flag.Duration("frame", 50*time.Millisecond, "Game time that passes per frame.")
	botRate := flag.Float64("bot-rate", 0.3, "Fraction of frames on which the bot presses a key.")
	recordDir := flag.String("record-dir", "", "Record every game into this directory.")
	replayPath := flag.String("replay", "", "Verify a recording instead of playing.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *replayPath != "" {
		res, err := replay.Verify(*replayPath)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		fmt.Printf("%s: ok, %d entries, seed %d, %s, score %d, pieces %d\n",
			*replayPath, res.Entries, res.Header.Seed, res.State, res.Score, res.Pieces)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg.Seed = *seed

	log.SetOutput(os.Stderr)
	log.Println("Starting soak run...")
	report, err := run(options{
		Config:    cfg,
		Games:     *games,
		MaxFrames: *maxFrames,
		FrameStep: *frameStep,
		BotRate:   *botRate,
		RecordDir: *recordDir,
		GCPause:   *gcPauseMetrics,
	})
	if err != nil {
		log.Fatalf("Soak run failed: %v", err)
	}
	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run plays every game on a manual clock, so results depend only on the
// seeds and the frame step.
func run(opts options) (*Report, error) {
	report := &Report{
		Games:          opts.Games,
		Seed:           opts.Config.Seed,
		Width:          opts.Config.Board.Width,
		Height:         opts.Config.Board.Height,
		MaxFrames:      opts.MaxFrames,
		FrameStep:      opts.FrameStep,
		GCPauseMetrics: opts.GCPause,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := range opts.Games {
		cfg := opts.Config
		cfg.Seed = opts.Config.Seed + uint64(i)
		if cfg.Seed == 0 {
			cfg.Seed = 1
		}

		clock := tetris.NewManualClock(time.Unix(0, 0))
		sessionOpts := shell.Options{Config: cfg, Clock: clock}
		if opts.RecordDir != "" {
			sessionOpts.RecordPath = filepath.Join(opts.RecordDir, fmt.Sprintf("game-%03d.jsonl.zst", i+1))
		}

		s, err := shell.NewSession(sessionOpts, 1, NewBot(cfg.Seed, opts.BotRate))
		if err != nil {
			return nil, err
		}

		frames := 0
		for frames < opts.MaxFrames && s.Game.State() != tetris.StateLost {
			clock.Advance(opts.FrameStep)

			updateStart := time.Now()
			events := s.Scheduler.Once(opts.FrameStep.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			frames++

			for _, e := range events {
				if e.Kind == frame.EventLinesCleared {
					report.Lines += e.Lines
				}
			}
		}

		if s.Game.State() == tetris.StateLost {
			report.Lost++
		}
		report.TotalFrames += int64(frames)
		report.Pieces += s.Game.Pieces()
		report.Score.Samples = append(report.Score.Samples, s.Game.Score())
		report.GameFrames.Samples = append(report.GameFrames.Samples, frames)
		report.AddSystems(s.Scheduler.GetStats())

		if err := s.Close(); err != nil {
			return nil, err
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	return report, nil
}
