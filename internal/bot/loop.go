package bot

import (
	"context"
	"fmt"
	"time"

	"jordanella.com/autoscape-go/internal/cv"
	"jordanella.com/autoscape-go/internal/input"
	"jordanella.com/autoscape-go/internal/logging"
)

// FrameSource hands out complete, caller-owned frames
type FrameSource interface {
	NextFrame() (*cv.Frame, error)
}

// Pointer moves toward frame-space targets and clicks
type Pointer interface {
	MoveToward(dest, ref cv.Point) error
	Click(button input.Button) error
}

// Trigger is sampled once per cycle; while it reports true every cycle
// toggles the run state.
type Trigger interface {
	Pressed() bool
}

// Announcer signals a run state change to the operator and returns once
// the signal has finished.
type Announcer interface {
	Announce(active bool)
}

// Recorder journals loop events
type Recorder interface {
	Record(rec CycleRecord) error
}

// Loop is the control loop: poll the trigger, check capacity, then find,
// approach and click the target closest to the screen center.
type Loop struct {
	settings  *Settings
	frames    FrameSource
	capacity  *CapacityMonitor
	pointer   Pointer
	trigger   Trigger
	announcer Announcer
	recorder  Recorder
	logger    *logging.Logger

	state RunState

	sleep func(time.Duration)
	wait  func(ctx context.Context, d time.Duration) error
}

// NewLoop creates a paused loop
func NewLoop(settings *Settings, frames FrameSource, pointer Pointer, trigger Trigger, announcer Announcer, logger *logging.Logger) *Loop {
	return &Loop{
		settings:  settings,
		frames:    frames,
		capacity:  NewCapacityMonitor(frames, settings.CapacityProbe, settings.EmptySlot),
		pointer:   pointer,
		trigger:   trigger,
		announcer: announcer,
		logger:    logger,
		state:     StatePaused,
		sleep:     time.Sleep,
		wait:      waitContext,
	}
}

// WithRecorder journals every event to r
func (l *Loop) WithRecorder(r Recorder) *Loop {
	l.recorder = r
	return l
}

// State returns the current run state
func (l *Loop) State() RunState {
	return l.state
}

// Run cycles until ctx is cancelled or a cycle fails. A cancelled context
// is a normal shutdown and returns nil; it is only observed between cycles
// and during the inter-cycle wait.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		outcome, err := l.Step()
		if err != nil {
			return err
		}
		if outcome.restartsCycle() {
			continue
		}

		if err := l.wait(ctx, l.settings.CycleInterval); err != nil {
			return nil
		}
	}
}

// Step runs one cycle without the trailing wait
func (l *Loop) Step() (Outcome, error) {
	if l.trigger.Pressed() {
		l.toggle()
	}

	if !l.state.Active() {
		return OutcomePaused, nil
	}

	empty, err := l.capacity.IsEmpty()
	if err != nil {
		return "", err
	}

	if !empty {
		if l.settings.AutoEmpty {
			l.logger.Info("Inventory full, emptying last slot")
			if err := l.emptyLastSlot(); err != nil {
				return "", fmt.Errorf("failed to empty last slot: %w", err)
			}
			l.record(CycleRecord{Outcome: OutcomeFullRecovered, State: l.state})
			return OutcomeFullRecovered, nil
		}

		l.logger.Info("Inventory full, pausing")
		l.toggle()
		l.record(CycleRecord{Outcome: OutcomeFullPaused, State: l.state})
		return OutcomeFullPaused, nil
	}

	return l.hunt()
}

// hunt scans one frame, approaches the nearest match and clicks it
func (l *Loop) hunt() (Outcome, error) {
	frame, err := l.frames.NextFrame()
	if err != nil {
		return "", err
	}

	candidates := cv.Scan(frame, l.settings.Target)
	target, found := cv.Nearest(candidates, l.settings.Center)

	l.logger.DebugWithContext("Scanned frame", map[string]interface{}{
		"width":      frame.Width,
		"height":     frame.Height,
		"candidates": len(candidates),
		"found":      found,
		"closest":    target,
	})

	if !found {
		l.record(CycleRecord{Outcome: OutcomeNoTarget, State: l.state})
		return OutcomeNoTarget, nil
	}

	if err := l.pointer.MoveToward(target, l.settings.Center); err != nil {
		return "", err
	}
	if err := l.pointer.Click(input.ButtonLeft); err != nil {
		return "", err
	}

	l.record(CycleRecord{
		Outcome:    OutcomeClicked,
		State:      l.state,
		Candidates: len(candidates),
		Target:     target,
		HasTarget:  true,
	})
	return OutcomeClicked, nil
}

func (l *Loop) toggle() {
	l.state = l.state.toggled()
	l.announcer.Announce(l.state.Active())
	l.logger.Info(fmt.Sprintf("Running: %v", l.state.Active()))
	l.record(CycleRecord{Outcome: OutcomeToggled, State: l.state})
}

// record journals rec. The journal is not part of the control path, so a
// write failure is logged and the loop carries on.
func (l *Loop) record(rec CycleRecord) {
	if l.recorder == nil {
		return
	}
	if err := l.recorder.Record(rec); err != nil {
		l.logger.Warn(fmt.Sprintf("Failed to journal %s: %v", rec.Outcome, err))
	}
}

func waitContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
