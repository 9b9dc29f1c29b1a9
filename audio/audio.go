// Package audio plays short synthesized tones for game events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/blockfall/frame"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a sound the player can make.
type Cue uint8

const (
	CueNone Cue = iota
	CueGrounded
	CueLinesCleared
	CueLost
)

type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue][]tone{
	CueGrounded:     {{220, 30 * time.Millisecond}},
	CueLinesCleared: {{660, 60 * time.Millisecond}, {880, 90 * time.Millisecond}},
	CueLost:         {{330, 150 * time.Millisecond}, {247, 150 * time.Millisecond}, {165, 300 * time.Millisecond}},
}

// CueFor returns the cue for a frame event.
func CueFor(e frame.Event) Cue {
	switch e.Kind {
	case frame.EventGrounded:
		return CueGrounded
	case frame.EventLinesCleared:
		return CueLinesCleared
	case frame.EventLost:
		return CueLost
	}
	return CueNone
}

// Player owns the speaker. The zero value is a silent player.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker. On error the returned player is still
// usable and stays silent, so callers can log and carry on.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{ready: true}, nil
}

// Play queues the tones for c.
func (p *Player) Play(c Cue) {
	if p == nil || !p.ready {
		return
	}

	tones := cueTones[c]
	if len(tones) == 0 {
		return
	}

	streamers := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		streamers = append(streamers, beep.Take(sampleRate.N(t.duration), sine))
	}
	speaker.Play(beep.Seq(streamers...))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p == nil || !p.ready {
		return
	}
	speaker.Close()
	p.ready = false
}

// CueSystem plays a cue for every event WatchSystem published this frame.
// Register it after frame.WatchSystem.
type CueSystem struct {
	Player *Player
}

func (s *CueSystem) Execute(f *frame.UpdateFrame) {
	for _, e := range f.Events {
		s.Player.Play(CueFor(e))
	}
}
