package models

// RunState is the state of one orchestration run
type RunState string

const (
	RunNotStarted     RunState = "NOT_STARTED"
	RunCreating       RunState = "CREATING"
	RunConfiguring    RunState = "CONFIGURING"
	RunSaved          RunState = "SAVED"
	RunSelectingGifts RunState = "SELECTING_GIFTS"
	RunLaunching      RunState = "LAUNCHING"
	RunLaunched       RunState = "LAUNCHED"
	RunPartial        RunState = "PARTIAL"
	RunFailed         RunState = "FAILED"
)

var runTransitions = map[RunState][]RunState{
	RunNotStarted:     {RunCreating, RunFailed},
	RunCreating:       {RunConfiguring, RunFailed},
	RunConfiguring:    {RunSaved, RunSelectingGifts, RunFailed},
	RunSelectingGifts: {RunLaunching, RunFailed},
	RunLaunching:      {RunLaunched, RunPartial, RunFailed},
}

// IsTerminal reports whether no further transition is possible
func (s RunState) IsTerminal() bool {
	switch s {
	case RunLaunched, RunSaved, RunPartial, RunFailed:
		return true
	}
	return false
}

// CanTransition reports whether next is a legal successor of s
func (s RunState) CanTransition(next RunState) bool {
	for _, candidate := range runTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}
