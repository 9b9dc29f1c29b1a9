package audio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/tetris"
)

func TestCueFor(t *testing.T) {
	assert.Equal(t, audio.CueGrounded, audio.CueFor(frame.Event{Kind: frame.EventGrounded}))
	assert.Equal(t, audio.CueLinesCleared, audio.CueFor(frame.Event{Kind: frame.EventLinesCleared, Lines: 2}))
	assert.Equal(t, audio.CueLost, audio.CueFor(frame.Event{Kind: frame.EventLost}))
	assert.Equal(t, audio.CueNone, audio.CueFor(frame.Event{}))
}

func TestSilentPlayer(t *testing.T) {
	var nilPlayer *audio.Player
	assert.NotPanics(t, func() {
		nilPlayer.Play(audio.CueLost)
		nilPlayer.Close()

		p := &audio.Player{}
		p.Play(audio.CueLinesCleared)
		p.Close()
	})
}

func TestCueSystemWithoutSpeaker(t *testing.T) {
	clock := tetris.NewManualClock(time.Unix(0, 0))
	g, err := tetris.NewGame(10, 20, tetris.WithClock(clock), tetris.WithSeed(2))
	require.NoError(t, err)
	g.Start()

	scheduler := frame.NewScheduler(g)
	scheduler.Register(&frame.GravitySystem{})
	scheduler.Register(&frame.WatchSystem{})
	scheduler.Register(&audio.CueSystem{Player: &audio.Player{}})

	assert.NotPanics(t, func() {
		for range 300 {
			clock.Advance(tetris.GravityInterval + time.Millisecond)
			scheduler.Once(0)
		}
	})
	assert.Greater(t, g.Pieces(), 0)
}
