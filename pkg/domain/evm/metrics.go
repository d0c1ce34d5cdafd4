package evm

// Metrics is the derived EVM metric set for a single sample. Every field
// follows the standard formulas with zero-division fallbacks: a degenerate
// denominator yields the documented fallback value, never an error.
type Metrics struct {
	CostVariance            float64 `json:"cost_variance" yaml:"cost_variance"`
	ScheduleVariance        float64 `json:"schedule_variance" yaml:"schedule_variance"`
	CostVariancePercent     float64 `json:"cost_variance_percent" yaml:"cost_variance_percent"`
	ScheduleVariancePercent float64 `json:"schedule_variance_percent" yaml:"schedule_variance_percent"`
	CPI                     float64 `json:"cpi" yaml:"cpi"`
	SPI                     float64 `json:"spi" yaml:"spi"`
	EstimateAtCompletion    float64 `json:"estimate_at_completion" yaml:"estimate_at_completion"`
	EstimateToComplete      float64 `json:"estimate_to_complete" yaml:"estimate_to_complete"`
	VarianceAtCompletion    float64 `json:"variance_at_completion" yaml:"variance_at_completion"`
	TCPI                    float64 `json:"tcpi" yaml:"tcpi"`
	PercentComplete         float64 `json:"percent_complete" yaml:"percent_complete"`
}

// Compute derives the full metric set from a sample. The function is pure:
// identical input yields identical output, and no input combination fails.
//
// Fallbacks: cpi=0 when ac=0, spi=0 when pv=0, eac=bac when cpi=0,
// tcpi=0 when bac=ac, and percentages are 0 when their base is 0.
func Compute(s MetricSample) Metrics {
	m := Metrics{
		CostVariance:     s.EarnedValue - s.ActualCost,
		ScheduleVariance: s.EarnedValue - s.PlannedValue,
	}

	if s.EarnedValue > 0 {
		m.CostVariancePercent = m.CostVariance / s.EarnedValue * 100
	}
	if s.PlannedValue > 0 {
		m.ScheduleVariancePercent = m.ScheduleVariance / s.PlannedValue * 100
	}
	if s.ActualCost > 0 {
		m.CPI = s.EarnedValue / s.ActualCost
	}
	if s.PlannedValue > 0 {
		m.SPI = s.EarnedValue / s.PlannedValue
	}

	if m.CPI > 0 {
		m.EstimateAtCompletion = s.BudgetAtCompletion / m.CPI
	} else {
		m.EstimateAtCompletion = s.BudgetAtCompletion
	}
	m.EstimateToComplete = m.EstimateAtCompletion - s.ActualCost
	m.VarianceAtCompletion = s.BudgetAtCompletion - m.EstimateAtCompletion

	if remaining := s.BudgetAtCompletion - s.ActualCost; remaining != 0 {
		m.TCPI = (s.BudgetAtCompletion - s.EarnedValue) / remaining
	}
	if s.BudgetAtCompletion > 0 {
		m.PercentComplete = s.EarnedValue / s.BudgetAtCompletion * 100
	}

	return m
}

// OverBudget returns true if the work performed cost more than it earned.
func (m Metrics) OverBudget() bool {
	return m.CostVariance < 0
}

// BehindSchedule returns true if less value was earned than planned.
func (m Metrics) BehindSchedule() bool {
	return m.ScheduleVariance < 0
}

// ProjectedOverrun returns the forecast overrun amount, positive when the
// estimate at completion exceeds the budget.
func (m Metrics) ProjectedOverrun() float64 {
	return -m.VarianceAtCompletion
}
