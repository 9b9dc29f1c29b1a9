package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/input"
)

var botActions = []input.Action{
	input.ActionLeft,
	input.ActionRight,
	input.ActionRotate,
	input.ActionDownPress,
	input.ActionDownRelease,
}

// Bot presses a random game key on roughly rate of all frames.
type Bot struct {
	rng  *rand.Rand
	rate float64
}

func NewBot(seed uint64, rate float64) *Bot {
	return &Bot{rng: rand.New(rand.NewPCG(seed, 0x626f74)), rate: rate}
}

func (b *Bot) Execute(f *frame.UpdateFrame) {
	if b.rng.Float64() >= b.rate {
		return
	}
	f.Commands.Push(botActions[b.rng.IntN(len(botActions))])
}
