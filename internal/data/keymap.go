package data

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Action is something a key can be bound to.
type Action string

const (
	ActionUp              Action = "up"
	ActionDown            Action = "down"
	ActionLeft            Action = "left"
	ActionRight           Action = "right"
	ActionSpecial         Action = "special"
	ActionPause           Action = "pause"
	ActionQuit            Action = "quit"
	ActionToggleMovement  Action = "toggle_movement"
	ActionToggleLifespan  Action = "toggle_lifespan"
	ActionToggleCollision Action = "toggle_collision"
	ActionToggleSpawning  Action = "toggle_spawning"
	ActionToggleRendering Action = "toggle_rendering"
	ActionManualSpawn     Action = "manual_spawn"
	ActionSpawnFaster     Action = "spawn_faster"
	ActionSpawnSlower     Action = "spawn_slower"
)

var knownActions = map[Action]bool{
	ActionUp: true, ActionDown: true, ActionLeft: true, ActionRight: true,
	ActionSpecial: true, ActionPause: true, ActionQuit: true,
	ActionToggleMovement: true, ActionToggleLifespan: true, ActionToggleCollision: true,
	ActionToggleSpawning: true, ActionToggleRendering: true,
	ActionManualSpawn: true, ActionSpawnFaster: true, ActionSpawnSlower: true,
}

// Keymap resolves key names ("w", "esc", "up", "space") to actions.
type Keymap struct {
	keys map[string]Action
}

// DefaultKeymap mirrors the classic controls: WASD to move, P to pause,
// Esc to quit, plus the debug keys.
func DefaultKeymap() *Keymap {
	return mustKeymap(map[Action][]string{
		ActionUp:              {"w", "up"},
		ActionDown:            {"s", "down"},
		ActionLeft:            {"a", "left"},
		ActionRight:           {"d", "right"},
		ActionSpecial:         {"space"},
		ActionPause:           {"p"},
		ActionQuit:            {"esc", "q"},
		ActionToggleMovement:  {"1"},
		ActionToggleLifespan:  {"2"},
		ActionToggleCollision: {"3"},
		ActionToggleSpawning:  {"4"},
		ActionToggleRendering: {"5"},
		ActionManualSpawn:     {"e"},
		ActionSpawnFaster:     {"-"},
		ActionSpawnSlower:     {"+", "="},
	})
}

// mustKeymap panics on a broken built-in table.
func mustKeymap(bindings map[Action][]string) *Keymap {
	km, err := newKeymap(bindings)
	if err != nil {
		panic(err)
	}
	return km
}

// LoadKeymap loads keymap.yaml, a mapping of action to key names.
// A missing file yields DefaultKeymap.
func LoadKeymap(path string) (*Keymap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultKeymap(), nil
		}
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	var bindings map[Action][]string
	if err := yaml.Unmarshal(raw, &bindings); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	return newKeymap(bindings)
}

func newKeymap(bindings map[Action][]string) (*Keymap, error) {
	km := &Keymap{keys: make(map[string]Action, len(bindings)*2)}
	for action, keys := range bindings {
		if !knownActions[action] {
			return nil, fmt.Errorf("keymap: unknown action %q", action)
		}
		for _, k := range keys {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				continue
			}
			if prev, dup := km.keys[k]; dup && prev != action {
				return nil, fmt.Errorf("keymap: key %q bound to both %s and %s", k, prev, action)
			}
			km.keys[k] = action
		}
	}
	return km, nil
}

// Lookup returns the action bound to a key name.
func (k *Keymap) Lookup(key string) (Action, bool) {
	a, ok := k.keys[strings.ToLower(key)]
	return a, ok
}

// Keys returns the sorted key names bound to action.
func (k *Keymap) Keys(action Action) []string {
	var out []string
	for key, a := range k.keys {
		if a == action {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// Count returns the total number of bound keys.
func (k *Keymap) Count() int {
	return len(k.keys)
}
