// Package forecast projects cost and completion outcomes for a program
// from its latest metrics and the observed stability of its performance
// indices.
package forecast

import (
	"math"
	"time"

	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
)

// ConfidenceLevel buckets how much the performance history supports the
// projection.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Volatility cut points for the confidence buckets. Fixed contract values.
const (
	highConfidenceVolatility   = 0.1
	mediumConfidenceVolatility = 0.2
)

// ConfidenceFromVolatility maps the volatility of the CPI series to a
// confidence bucket.
func ConfidenceFromVolatility(volatility float64) ConfidenceLevel {
	switch {
	case volatility < highConfidenceVolatility:
		return ConfidenceHigh
	case volatility < mediumConfidenceVolatility:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Method labels how the budget projection was derived.
type Method string

const (
	// MethodCPIBased extrapolates the budget from the observed cost
	// efficiency (eac = bac / cpi).
	MethodCPIBased Method = "cpi_based"
	// MethodBaseline reports the planned budget unchanged because no
	// cost efficiency has been observed yet.
	MethodBaseline Method = "baseline"
)

// Forecast is the projected cost and completion outcome for a program as
// of a reference date.
type Forecast struct {
	AsOf                 time.Time       `json:"as_of" yaml:"as_of"`
	PlannedCompletion    time.Time       `json:"planned_completion" yaml:"planned_completion"`
	EstimatedCompletion  time.Time       `json:"estimated_completion" yaml:"estimated_completion"`
	EstimatedBudget      float64         `json:"estimated_budget" yaml:"estimated_budget"`
	BudgetVariance       float64         `json:"budget_variance" yaml:"budget_variance"`
	ScheduleVarianceDays int             `json:"schedule_variance_days" yaml:"schedule_variance_days"`
	Confidence           ConfidenceLevel `json:"confidence" yaml:"confidence"`
	Method               Method          `json:"method" yaml:"method"`
	Scenarios            []Scenario      `json:"scenarios" yaml:"scenarios"`
}

// Generate projects the completion date and final cost of a program.
//
// The date projection stretches the remaining planned days by the
// observed schedule efficiency: estimated = asOf + ceil(remaining / spi).
// With no observed schedule efficiency the planned completion stands
// unchanged. The budget projection carries the metrics' estimate at
// completion; volatility is that of the CPI series and only drives the
// confidence bucket.
func Generate(m evm.Metrics, bac float64, plannedCompletion, asOf time.Time, volatility float64) (Forecast, error) {
	if bac <= 0 {
		return Forecast{}, ErrInvalidBudget
	}

	estimated := plannedCompletion
	if m.SPI > 0 {
		remaining := remainingDays(asOf, plannedCompletion)
		estimated = asOf.AddDate(0, 0, int(math.Ceil(float64(remaining)/m.SPI)))
	}

	method := MethodCPIBased
	if m.CPI <= 0 {
		method = MethodBaseline
	}

	f := Forecast{
		AsOf:                 asOf,
		PlannedCompletion:    plannedCompletion,
		EstimatedCompletion:  estimated,
		EstimatedBudget:      m.EstimateAtCompletion,
		BudgetVariance:       m.VarianceAtCompletion,
		ScheduleVarianceDays: daysBetween(plannedCompletion, estimated),
		Confidence:           ConfidenceFromVolatility(volatility),
		Method:               method,
	}
	f.Scenarios = buildScenarios(m.EstimateAtCompletion, estimated)
	return f, nil
}

// ExpectedCost returns the probability-weighted cost across scenarios.
func (f Forecast) ExpectedCost() float64 {
	total := 0.0
	for _, s := range f.Scenarios {
		total += s.Cost * s.Probability
	}
	return total
}

// IsLate reports whether the projected completion falls after the plan.
func (f Forecast) IsLate() bool {
	return f.ScheduleVarianceDays > 0
}

// RequiredCPI returns the cost efficiency the remaining work must sustain
// to land on the target cost. A target equal to what is already spent
// leaves no room for remaining work and yields 0.
func RequiredCPI(bac, ac, target float64) float64 {
	if target == ac {
		return 0
	}
	return (bac - ac) / (target - ac)
}

// remainingDays counts the whole days from asOf to the planned
// completion, never below zero.
func remainingDays(asOf, plannedCompletion time.Time) int {
	days := int(math.Ceil(plannedCompletion.Sub(asOf).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// daysBetween returns the signed day count from a to b.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
