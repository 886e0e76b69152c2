package input

import (
	"testing"

	hook "github.com/robotn/gohook"
)

func TestKeyTriggerTracksHeldState(t *testing.T) {
	kt, err := newKeyTrigger("Delete")
	if err != nil {
		t.Fatalf("Failed to create trigger: %v", err)
	}
	other := kt.keycode + 1

	steps := []struct {
		event    hook.Event
		expected bool
	}{
		{hook.Event{Kind: hook.KeyDown, Keycode: kt.keycode}, true},
		{hook.Event{Kind: hook.KeyUp, Keycode: other}, true},
		{hook.Event{Kind: hook.KeyHold, Keycode: kt.keycode}, true},
		{hook.Event{Kind: hook.KeyUp, Keycode: kt.keycode}, false},
		{hook.Event{Kind: hook.KeyDown, Keycode: other}, false},
	}

	for i, step := range steps {
		events := make(chan hook.Event, 1)
		events <- step.event
		close(events)
		kt.track(events)

		if got := kt.Pressed(); got != step.expected {
			t.Errorf("Step %d: expected pressed=%v, got %v", i, step.expected, got)
		}
	}
}

func TestUnknownKeyIsRejected(t *testing.T) {
	if _, err := newKeyTrigger("not-a-key"); err == nil {
		t.Error("Expected error for unknown key")
	}
}
