package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/shell"
	"github.com/plus3/blockfall/shell/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults apply when empty.")
	seed := flag.Uint64("seed", 0, "Piece seed. Zero picks a random seed per game.")
	record := flag.String("record", "", "Record each game to this .jsonl.zst path.")
	logPath := flag.String("log", "", "Write logs to this file. The terminal is in use, so logs are dropped when empty.")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	opts := shell.Options{Config: cfg, RecordPath: *record}
	if cfg.Audio {
		player, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer player.Close()
		opts.Player = player
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to init screen: %v", err)
	}

	app, err := tui.New(screen, opts)
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to create app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = app.Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Game exited: %v", err)
	}
}
