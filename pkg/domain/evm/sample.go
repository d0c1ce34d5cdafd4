// Package evm computes Earned Value Management metrics from cost and
// schedule observations.
package evm

import (
	"time"
)

// MetricSample is a single cost/schedule observation for a reporting period.
// All amounts are monetary values in the program currency; BudgetAtCompletion
// is constant across samples within one baseline.
type MetricSample struct {
	Date               time.Time `json:"date" yaml:"date"`
	PlannedValue       float64   `json:"planned_value" yaml:"planned_value"`
	EarnedValue        float64   `json:"earned_value" yaml:"earned_value"`
	ActualCost         float64   `json:"actual_cost" yaml:"actual_cost"`
	BudgetAtCompletion float64   `json:"budget_at_completion" yaml:"budget_at_completion"`
}

// NewMetricSample creates a validated MetricSample.
// Planned value, earned value and actual cost must be non-negative;
// the budget at completion must be positive.
func NewMetricSample(date time.Time, plannedValue, earnedValue, actualCost, budgetAtCompletion float64) (MetricSample, error) {
	s := MetricSample{
		Date:               date,
		PlannedValue:       plannedValue,
		EarnedValue:        earnedValue,
		ActualCost:         actualCost,
		BudgetAtCompletion: budgetAtCompletion,
	}
	if err := s.Validate(); err != nil {
		return MetricSample{}, err
	}
	return s, nil
}

// Validate checks the sample against the input contract. Deserialized
// samples should be validated before metrics are computed from them.
func (s MetricSample) Validate() error {
	if s.PlannedValue < 0 || s.EarnedValue < 0 || s.ActualCost < 0 {
		return ErrNegativeAmount
	}
	if s.BudgetAtCompletion <= 0 {
		return ErrInvalidBudget
	}
	return nil
}
