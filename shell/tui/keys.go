package tui

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/input"
)

// runeBase offsets printable keys past every tcell special key code.
const runeBase = 1 << 16

var keyNames = sync.OnceValue(func() map[string]tcell.Key {
	names := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		names[strings.ToLower(name)] = k
	}
	return names
})

// RuneKey is the binding key for a printable character.
func RuneKey(r rune) input.Key {
	return input.Key(runeBase + int(r))
}

// ResolveKey maps a key name to a binding key. A single character binds that
// character; anything longer is looked up in tcell.KeyNames ignoring case,
// so "Left", "Enter" and "Esc" work.
func ResolveKey(name string) (input.Key, bool) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return RuneKey(r), true
	}
	k, ok := keyNames()[strings.ToLower(name)]
	return input.Key(k), ok
}

// EventKey returns the binding key an event was produced by.
func EventKey(ev *tcell.EventKey) input.Key {
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune())
	}
	return input.Key(ev.Key())
}
