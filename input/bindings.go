package input

import (
	"fmt"
	"sort"

	"github.com/kamstrup/intmap"
)

// Key is a front-end key code. Each shell defines how its native key events
// map onto Key values.
type Key int

// Bindings maps key codes to actions.
type Bindings struct {
	keys *intmap.Map[Key, Action]
}

// NewBindings returns an empty table.
func NewBindings() *Bindings {
	return &Bindings{
		keys: intmap.New[Key, Action](16),
	}
}

// Bind maps k to a, replacing any previous binding.
func (b *Bindings) Bind(k Key, a Action) {
	b.keys.Put(k, a)
}

// Unbind removes the binding for k.
func (b *Bindings) Unbind(k Key) {
	b.keys.Del(k)
}

// Lookup returns the action bound to k.
func (b *Bindings) Lookup(k Key) (Action, bool) {
	return b.keys.Get(k)
}

// Len returns the number of bound keys.
func (b *Bindings) Len() int {
	return b.keys.Len()
}

// Resolver turns a key name from configuration into a key code.
type Resolver func(name string) (Key, bool)

// FromNames builds a table from action name -> key names, the shape used in
// configuration files.
func FromNames(table map[string][]string, resolve Resolver) (*Bindings, error) {
	b := NewBindings()

	actions := make([]string, 0, len(table))
	for name := range table {
		actions = append(actions, name)
	}
	sort.Strings(actions)

	for _, name := range actions {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, keyName := range table[name] {
			k, ok := resolve(keyName)
			if !ok {
				return nil, fmt.Errorf("input: unknown key %q for action %s", keyName, name)
			}
			b.Bind(k, action)
		}
	}
	return b, nil
}
