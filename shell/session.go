// Package shell holds what the GUI and terminal front ends share: a Session
// is one open Game page, with its game aggregate, frame scheduler and
// optional recording.
package shell

import (
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/replay"
	"github.com/plus3/blockfall/tetris"
)

// Options configure every session a shell opens.
type Options struct {
	Config config.Config
	// Player plays event cues. Nil disables audio.
	Player *audio.Player
	// RecordPath, when set, records each session. The n-th session of a
	// run is written to SessionPath(RecordPath, n).
	RecordPath string
	// Clock defaults to tetris.SystemClock.
	Clock tetris.Clock
}

// Session is a started game and the scheduler driving it.
type Session struct {
	Game      *tetris.Game
	Scheduler *frame.Scheduler
	Seed      uint64

	recorder *replay.Recorder
	path     string
}

// NewSession builds and starts a game, then registers the systems that drive
// it: gravity, event watching, audio cues, the given extras in order, and the
// recorder last so it sees every action the extras queued.
func NewSession(opts Options, n int, extras ...frame.System) (*Session, error) {
	cfg := opts.Config
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	clock := opts.Clock
	if clock == nil {
		clock = tetris.SystemClock{}
	}

	game, err := tetris.NewGame(cfg.Board.Width, cfg.Board.Height,
		tetris.WithClock(clock), tetris.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	game.Start()

	s := &Session{
		Game:      game,
		Scheduler: frame.NewScheduler(game),
		Seed:      seed,
	}
	s.Scheduler.Register(&frame.GravitySystem{})
	s.Scheduler.Register(&frame.WatchSystem{})
	if opts.Player != nil {
		s.Scheduler.Register(&audio.CueSystem{Player: opts.Player})
	}
	for _, sys := range extras {
		s.Scheduler.Register(sys)
	}

	if opts.RecordPath != "" {
		s.path = SessionPath(opts.RecordPath, n)
		header := replay.Header{Seed: seed, Width: cfg.Board.Width, Height: cfg.Board.Height}
		s.recorder, err = replay.Create(s.path, header, game.StartedAt())
		if err != nil {
			return nil, fmt.Errorf("shell: record: %w", err)
		}
		s.Scheduler.Register(s.recorder)
	}

	log.Printf("session %d started: %dx%d seed %d", n, cfg.Board.Width, cfg.Board.Height, seed)
	return s, nil
}

// Close ends the session and finishes its recording, if any.
func (s *Session) Close() error {
	log.Printf("session ended: %s score %d pieces %d", s.Game.State(), s.Game.Score(), s.Game.Pieces())
	if s.recorder == nil {
		return nil
	}
	err := s.recorder.Close()
	s.recorder = nil
	if err != nil {
		return fmt.Errorf("shell: record: %w", err)
	}
	log.Printf("recording written to %s", s.path)
	return nil
}

// SessionPath returns where the n-th session of a run is recorded. The first
// session uses base unchanged; later ones get "-n" before the extension.
func SessionPath(base string, n int) string {
	if n <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	if strings.HasSuffix(base, ".jsonl.zst") {
		ext = ".jsonl.zst"
	}
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), n, ext)
}

// GameOverText is shown over the board once the game is lost.
const GameOverText = "Game Over"

// ScoreText is the score label both shells draw beside the board.
func ScoreText(g *tetris.Game) string {
	return fmt.Sprintf("Score: %d", g.Score())
}

// PreviewOrigin is where the next piece is drawn, in board cells: three
// columns right of the board and three rows down.
func PreviewOrigin(g *tetris.Game) tetris.Point {
	return tetris.Point{X: g.Board().Width() + 3, Y: 3}
}
