package bot

import "jordanella.com/autoscape-go/internal/cv"

// RunState is the loop's paused/active flag
type RunState int

const (
	StatePaused RunState = iota
	StateActive
)

func (s RunState) String() string {
	if s == StateActive {
		return "active"
	}
	return "paused"
}

// Active reports whether the loop hunts for targets
func (s RunState) Active() bool {
	return s == StateActive
}

func (s RunState) toggled() RunState {
	if s == StateActive {
		return StatePaused
	}
	return StateActive
}

// Outcome is what a single cycle did
type Outcome string

const (
	OutcomePaused        Outcome = "paused"
	OutcomeToggled       Outcome = "toggled"
	OutcomeClicked       Outcome = "clicked"
	OutcomeNoTarget      Outcome = "no_target"
	OutcomeFullRecovered Outcome = "full_recovered"
	OutcomeFullPaused    Outcome = "full_paused"
)

// restartsCycle reports outcomes after which the next cycle starts
// without the usual wait
func (o Outcome) restartsCycle() bool {
	return o == OutcomeFullRecovered || o == OutcomeFullPaused
}

// CycleRecord describes one journaled event
type CycleRecord struct {
	Outcome    Outcome
	State      RunState
	Candidates int
	Target     cv.Point
	HasTarget  bool
}
