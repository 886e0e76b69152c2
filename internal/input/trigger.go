package input

import (
	"fmt"
	"strings"
	"sync"

	hook "github.com/robotn/gohook"
)

// KeyTrigger reports whether a key is currently held down. A global hook
// feeds key events into a held flag that the control loop samples once per
// cycle.
type KeyTrigger struct {
	key     string
	keycode uint16

	mu   sync.Mutex
	held bool
}

func newKeyTrigger(key string) (*KeyTrigger, error) {
	name := strings.ToLower(strings.TrimSpace(key))
	code, ok := hook.Keycode[name]
	if !ok {
		return nil, fmt.Errorf("unknown toggle key %q", key)
	}
	return &KeyTrigger{key: name, keycode: code}, nil
}

// StartKeyTrigger installs the global hook and starts tracking key
func StartKeyTrigger(key string) (*KeyTrigger, error) {
	kt, err := newKeyTrigger(key)
	if err != nil {
		return nil, err
	}

	go kt.track(hook.Start())
	return kt, nil
}

func (kt *KeyTrigger) track(events <-chan hook.Event) {
	for ev := range events {
		if ev.Keycode != kt.keycode {
			continue
		}

		kt.mu.Lock()
		switch ev.Kind {
		case hook.KeyDown, hook.KeyHold:
			kt.held = true
		case hook.KeyUp:
			kt.held = false
		}
		kt.mu.Unlock()
	}
}

// Pressed samples the key state
func (kt *KeyTrigger) Pressed() bool {
	kt.mu.Lock()
	defer kt.mu.Unlock()
	return kt.held
}

// Key returns the tracked key name
func (kt *KeyTrigger) Key() string {
	return kt.key
}

// Stop removes the global hook
func (kt *KeyTrigger) Stop() {
	hook.End()
}
