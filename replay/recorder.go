// Package replay records game sessions as zstd-compressed JSON lines and
// verifies them by playing them back on a manual clock.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/plus3/blockfall/frame"
)

// Header is the first line of a recording.
type Header struct {
	Seed   uint64 `json:"seed"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Entry is one recorded frame. Only frames that carried actions or advanced
// gravity are written; every other frame is a no-op for the game.
type Entry struct {
	Frame   uint64   `json:"frame"`
	AtNanos int64    `json:"at_ns"`
	Actions []string `json:"actions,omitempty"`
	Digest  string   `json:"digest"`
}

// Recorder is a frame.System that writes an Entry for each frame that
// changed the game. Register it after frame.GravitySystem.
type Recorder struct {
	f     *os.File
	enc   *zstd.Encoder
	w     *bufio.Writer
	start time.Time

	frame     uint64
	lastSteps int
	err       error
}

// Create opens path for writing and writes the header. start must be the
// clock reading the game was started at.
func Create(path string, h Header, start time.Time) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	r := &Recorder{
		f:     f,
		enc:   enc,
		w:     bufio.NewWriterSize(enc, 64*1024),
		start: start,
	}
	if err := r.write(h); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

func (r *Recorder) Execute(f *frame.UpdateFrame) {
	r.frame++
	if r.err != nil {
		return
	}

	actions := f.Commands.Actions()
	steps := f.Game.Steps()
	if len(actions) == 0 && steps == r.lastSteps {
		return
	}
	r.lastSteps = steps

	entry := Entry{
		Frame:   r.frame,
		AtNanos: f.Game.LastTick().Sub(r.start).Nanoseconds(),
		Digest:  Digest(f.Game),
	}
	for _, a := range actions {
		entry.Actions = append(entry.Actions, a.String())
	}
	r.err = r.write(entry)
}

// Err returns the first write error, if any.
func (r *Recorder) Err() error {
	return r.err
}

func (r *Recorder) write(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// Close flushes and closes the file. It returns the first write error if
// one happened during recording.
func (r *Recorder) Close() error {
	var errs []error
	if r.w != nil {
		errs = append(errs, r.w.Flush())
		r.w = nil
	}
	if r.enc != nil {
		errs = append(errs, r.enc.Close())
		r.enc = nil
	}
	if r.f != nil {
		errs = append(errs, r.f.Close())
		r.f = nil
	}
	errs = append(errs, r.err)
	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}
	}
	return nil
}
