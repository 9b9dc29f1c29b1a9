package main

import (
	"flag"
	"log"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/shell"
	"github.com/plus3/blockfall/shell/gui"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults apply when empty.")
	debug := flag.Bool("debug", false, "Show the ImGui inspector window.")
	seed := flag.Uint64("seed", 0, "Piece seed. Zero picks a random seed per game.")
	record := flag.String("record", "", "Record each game to this .jsonl.zst path.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		log.Printf("config loaded from %s", *configPath)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	opts := shell.Options{Config: cfg, RecordPath: *record}
	if cfg.Audio {
		player, err := audio.NewPlayer()
		if err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
		defer player.Close()
		opts.Player = player
	}

	var backend *debugui_ebiten.ImguiBackend
	if *debug {
		w, h := gui.ScreenSize(cfg)
		backend = debugui_ebiten.NewImguiBackend(gui.WindowTitle, w, h)
	}

	app, err := gui.New(opts, backend)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
