// Package program holds the program entity, its performance baseline and
// the threshold-based health classification of its metrics.
package program

import (
	"strings"
	"time"
)

// Baseline is the approved schedule window a program is measured against.
type Baseline struct {
	Start  time.Time `json:"start" yaml:"start"`
	Finish time.Time `json:"finish" yaml:"finish"`
}

// NewBaseline creates a validated Baseline.
func NewBaseline(start, finish time.Time) (Baseline, error) {
	b := Baseline{Start: start, Finish: finish}
	if err := b.Validate(); err != nil {
		return Baseline{}, err
	}
	return b, nil
}

// Validate checks that the window is well formed.
func (b Baseline) Validate() error {
	if b.Start.IsZero() || b.Finish.IsZero() {
		return ErrMissingBaseline
	}
	if !b.Finish.After(b.Start) {
		return ErrInvalidBaseline
	}
	return nil
}

// PlannedDays returns the total planned duration in days.
func (b Baseline) PlannedDays() int {
	return int(b.Finish.Sub(b.Start).Hours() / 24)
}

// RemainingDays returns the planned days left after the given date,
// or 0 once the baseline finish has passed.
func (b Baseline) RemainingDays(asOf time.Time) int {
	if !asOf.Before(b.Finish) {
		return 0
	}
	return int(b.Finish.Sub(asOf).Hours() / 24)
}

// Program is the unit of performance measurement. A workspace manages
// exactly one program.
type Program struct {
	ID                 string    `json:"id" yaml:"id"`
	Name               string    `json:"name" yaml:"name"`
	BudgetAtCompletion float64   `json:"budget_at_completion" yaml:"budget_at_completion"`
	Baseline           Baseline  `json:"baseline" yaml:"baseline"`
	CreatedAt          time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" yaml:"updated_at"`
}

// NewProgram creates a validated Program.
func NewProgram(id, name string, budgetAtCompletion float64, baseline Baseline) (*Program, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyProgramID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyProgramName
	}
	if budgetAtCompletion <= 0 {
		return nil, ErrInvalidProgramBudget
	}
	if err := baseline.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Program{
		ID:                 id,
		Name:               name,
		BudgetAtCompletion: budgetAtCompletion,
		Baseline:           baseline,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}
