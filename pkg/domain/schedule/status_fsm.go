package schedule

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration.
// These must remain as untyped string constants for statekit.StateID
// compatibility. Values are kept in sync with the ActivityStatus constants
// in status.go.
const (
	statePending    = "pending"
	stateInProgress = "in_progress"
	stateBlocked    = "blocked"
	stateCompleted  = "completed"
)

// init validates at startup that the FSM state constants match the
// ActivityStatus values.
func init() {
	stateMap := map[string]ActivityStatus{
		statePending:    StatusPending,
		stateInProgress: StatusInProgress,
		stateBlocked:    StatusBlocked,
		stateCompleted:  StatusCompleted,
	}
	for fsmState, status := range stateMap {
		if fsmState != string(status) {
			panic(fmt.Sprintf("FSM state %q does not match ActivityStatus %q - constants are out of sync", fsmState, status))
		}
	}
}

// ActivityContext carries state data for the machine.
type ActivityContext struct {
	ActivityID string
}

// ActivityStateMachine enforces the activity lifecycle.
type ActivityStateMachine struct {
	interpreter *statekit.Interpreter[ActivityContext]
}

// NewActivityStateMachine builds a machine positioned at the given state.
func NewActivityStateMachine(initialState string, activityID string) (*ActivityStateMachine, error) {
	builder := statekit.NewMachine[ActivityContext]("activity-machine").
		WithInitial(statekit.StateID(initialState)).
		WithContext(ActivityContext{ActivityID: activityID})

	builder.State(statePending).
		On("start").Target(stateInProgress).
		On("block").Target(stateBlocked).
		Done()

	builder.State(stateInProgress).
		On("complete").Target(stateCompleted).
		On("block").Target(stateBlocked).
		On("stop").Target(statePending).
		Done()

	builder.State(stateBlocked).
		On("unblock").Target(statePending).
		Done()

	builder.State(stateCompleted).
		On("reopen").Target(statePending).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &ActivityStateMachine{interpreter: interpreter}, nil
}

// Transition attempts to apply a lifecycle event.
func (sm *ActivityStateMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}
	// statekit leaves the state unchanged when no transition matches.
	return fmt.Errorf("the action '%s' is not allowed while the activity is in the '%s' state", event, before)
}

// Current returns the machine's state value.
func (sm *ActivityStateMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// CurrentStatus returns the current state as an ActivityStatus.
func (sm *ActivityStateMachine) CurrentStatus() ActivityStatus {
	return ActivityStatus(sm.Current())
}

// CanTransition checks if the given event is valid for the current state.
func (sm *ActivityStateMachine) CanTransition(event string) bool {
	return sm.CurrentStatus().CanTransitionWith(event)
}

// ValidEvents returns the valid events for the current state.
func (sm *ActivityStateMachine) ValidEvents() []string {
	return sm.CurrentStatus().ValidEvents()
}
