package schedule

import (
	"encoding/json"
	"fmt"
)

// ActivityStatus is the lifecycle state of an activity.
type ActivityStatus string

const (
	StatusPending    ActivityStatus = "pending"
	StatusInProgress ActivityStatus = "in_progress"
	StatusBlocked    ActivityStatus = "blocked"
	StatusCompleted  ActivityStatus = "completed"
)

// validTransitions defines the allowed state transitions and their events.
// Map: currentStatus -> event -> targetStatus
var validTransitions = map[ActivityStatus]map[string]ActivityStatus{
	StatusPending: {
		"start": StatusInProgress,
		"block": StatusBlocked,
	},
	StatusInProgress: {
		"complete": StatusCompleted,
		"block":    StatusBlocked,
		"stop":     StatusPending,
	},
	StatusBlocked: {
		"unblock": StatusPending,
	},
	StatusCompleted: {
		"reopen": StatusPending,
	},
}

// AllActivityStatuses returns all valid activity statuses.
func AllActivityStatuses() []ActivityStatus {
	return []ActivityStatus{
		StatusPending,
		StatusInProgress,
		StatusBlocked,
		StatusCompleted,
	}
}

// IsValid returns true if the status is a valid activity status.
func (s ActivityStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s ActivityStatus) String() string {
	return string(s)
}

// CanTransitionWith returns true if the given event can trigger a
// transition from this status.
func (s ActivityStatus) CanTransitionWith(event string) bool {
	transitions, ok := validTransitions[s]
	if !ok {
		return false
	}
	_, ok = transitions[event]
	return ok
}

// TransitionWith returns the target status for a given event, or an error
// if not allowed.
func (s ActivityStatus) TransitionWith(event string) (ActivityStatus, error) {
	transitions, ok := validTransitions[s]
	if !ok {
		return s, fmt.Errorf("no transitions defined for status: %s", s)
	}
	target, ok := transitions[event]
	if !ok {
		return s, fmt.Errorf("event '%s' not allowed from status '%s'", event, s)
	}
	return target, nil
}

// ValidEvents returns all events that can be triggered from this status.
func (s ActivityStatus) ValidEvents() []string {
	transitions, ok := validTransitions[s]
	if !ok {
		return nil
	}
	var events []string
	for event := range transitions {
		events = append(events, event)
	}
	return events
}

// IsComplete returns true if the activity's work is finished.
func (s ActivityStatus) IsComplete() bool {
	return s == StatusCompleted
}

// IsInProgress returns true if the activity is being worked on.
func (s ActivityStatus) IsInProgress() bool {
	return s == StatusInProgress
}

// IsBlocked returns true if the activity is blocked.
func (s ActivityStatus) IsBlocked() bool {
	return s == StatusBlocked
}

// IsPending returns true if the activity has not started yet.
func (s ActivityStatus) IsPending() bool {
	return s == StatusPending
}

// DisplayName returns a human-readable name for the status.
func (s ActivityStatus) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusBlocked:
		return "Blocked"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseActivityStatus parses a string into an ActivityStatus.
func ParseActivityStatus(s string) (ActivityStatus, error) {
	status := ActivityStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid activity status: %s", s)
	}
	return status, nil
}

// MarshalJSON implements json.Marshaler.
func (s ActivityStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler. An empty string is read as
// pending so that imported records may omit the status.
func (s *ActivityStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str == "" {
		*s = StatusPending
		return nil
	}
	status := ActivityStatus(str)
	if !status.IsValid() {
		return fmt.Errorf("invalid activity status: %s", str)
	}
	*s = status
	return nil
}
