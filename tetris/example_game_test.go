package tetris_test

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// ExampleGame drives a game with a manual clock so gravity can be observed
// without waiting in real time.
func ExampleGame() {
	clock := tetris.NewManualClock(time.Unix(0, 0))
	game, err := tetris.NewGame(10, 20, tetris.WithClock(clock), tetris.WithSeed(1))
	if err != nil {
		panic(err)
	}
	fmt.Println(game.State())

	game.Start()
	start := game.Falling().Location

	clock.Advance(time.Second)
	game.ReceiveTick()
	fmt.Println(game.State(), game.Falling().Location.Y-start.Y)

	clock.Advance(time.Millisecond)
	game.ReceiveTick()
	fmt.Println(game.State(), game.Falling().Location.Y-start.Y)

	// Output:
	// READY
	// RUNNING 0
	// RUNNING 1
}

// ExampleShapeIter lists the board cells of a T piece.
func ExampleShapeIter() {
	t := tetris.Catalog()[tetris.KindT]
	for p := range tetris.NewShapeIter(t, tetris.Point{X: 3, Y: 3}).All() {
		fmt.Println(p.X, p.Y)
	}

	// Output:
	// 3 3
	// 3 4
	// 3 2
	// 4 3
}
