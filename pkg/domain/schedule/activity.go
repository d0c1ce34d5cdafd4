// Package schedule models the activity network of a program and computes
// its critical path.
package schedule

import (
	"strings"
	"time"
)

// Activity is one node of the program's activity network. Duration is in
// whole days; DependsOn lists the ids of activities that must finish first.
type Activity struct {
	ID        string         `json:"id" yaml:"id"`
	Name      string         `json:"name" yaml:"name"`
	Duration  int            `json:"duration" yaml:"duration"`
	DependsOn []string       `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Status    ActivityStatus `json:"status" yaml:"status"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" yaml:"updated_at"`
}

// NewActivity creates a validated Activity in the pending status.
func NewActivity(id, name string, duration int, dependsOn []string) (*Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyActivityID
	}
	if duration < 0 {
		return nil, ErrNegativeDuration
	}
	for _, dep := range dependsOn {
		if dep == id {
			return nil, ErrSelfDependency
		}
	}
	if name == "" {
		name = id
	}

	now := time.Now()
	return &Activity{
		ID:        id,
		Name:      name,
		Duration:  duration,
		DependsOn: append([]string(nil), dependsOn...),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Transition applies a lifecycle event to the activity through its state
// machine and stamps the update time.
func (a *Activity) Transition(event string) error {
	machine, err := NewActivityStateMachine(string(a.Status), a.ID)
	if err != nil {
		return err
	}
	if err := machine.Transition(event); err != nil {
		return err
	}
	a.Status = machine.CurrentStatus()
	a.UpdatedAt = time.Now()
	return nil
}

// Progress estimates schedule-derived percent complete over the network,
// weighting each activity by duration: completed work counts fully and
// in-progress work counts half. It stands in for earned value when
// schedule actuals are unknown.
func Progress(activities []Activity) float64 {
	total := 0
	earned := 0.0
	for _, a := range activities {
		total += a.Duration
		switch {
		case a.Status.IsComplete():
			earned += float64(a.Duration)
		case a.Status.IsInProgress():
			earned += float64(a.Duration) / 2
		}
	}
	if total == 0 {
		return 0
	}
	return earned / float64(total) * 100
}
