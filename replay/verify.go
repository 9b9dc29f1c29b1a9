package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// Result summarizes a verified recording.
type Result struct {
	Header  Header
	Entries int
	Score   int
	Pieces  int
	State   tetris.State
}

var epoch = time.Unix(0, 0)

type checkSystem struct {
	got string
}

func (c *checkSystem) Execute(f *frame.UpdateFrame) {
	c.got = Digest(f.Game)
}

// Verify plays the recording at path back against a fresh game with the
// recorded seed and fails on the first frame whose digest differs.
func Verify(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return Result{}, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return Result{}, err
		}
		return Result{}, errors.New("replay: empty recording")
	}
	var res Result
	if err := json.Unmarshal(sc.Bytes(), &res.Header); err != nil {
		return Result{}, fmt.Errorf("%s: header: %w", filepath.Base(path), err)
	}

	clock := tetris.NewManualClock(epoch)
	game, err := tetris.NewGame(res.Header.Width, res.Header.Height, tetris.WithClock(clock), tetris.WithSeed(res.Header.Seed))
	if err != nil {
		return Result{}, err
	}
	game.Start()

	check := &checkSystem{}
	scheduler := frame.NewScheduler(game)
	scheduler.Register(&frame.GravitySystem{})
	scheduler.Register(check)

	for sc.Scan() {
		var entry Entry
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			return res, fmt.Errorf("%s: unmarshal: %w", filepath.Base(path), err)
		}
		for _, name := range entry.Actions {
			a, err := input.ParseAction(name)
			if err != nil {
				return res, fmt.Errorf("frame %d: %w", entry.Frame, err)
			}
			scheduler.Push(a)
		}

		clock.Set(epoch.Add(time.Duration(entry.AtNanos)))
		scheduler.Once(0)
		if check.got != entry.Digest {
			return res, fmt.Errorf("digest mismatch at frame %d: got=%s want=%s", entry.Frame, check.got, entry.Digest)
		}
		res.Entries++
	}
	if err := sc.Err(); err != nil {
		return res, err
	}

	res.Score = game.Score()
	res.Pieces = game.Pieces()
	res.State = game.State()
	return res, nil
}
