package forecast

import "time"

// Scenario is one branch of the three-way projection.
type Scenario struct {
	Name        string    `json:"name" yaml:"name"`
	Cost        float64   `json:"cost" yaml:"cost"`
	Completion  time.Time `json:"completion" yaml:"completion"`
	Probability float64   `json:"probability" yaml:"probability"`
}

// Scenario names.
const (
	ScenarioOptimistic  = "optimistic"
	ScenarioRealistic   = "realistic"
	ScenarioPessimistic = "pessimistic"
)

// Scenario contract values. The cost multipliers, date offsets and
// probabilities are fixed; the probabilities sum to 1.0.
const (
	optimisticCostFactor  = 0.95
	pessimisticCostFactor = 1.10

	optimisticDaysEarly = 7
	pessimisticDaysLate = 14

	optimisticProbability  = 0.15
	realisticProbability   = 0.70
	pessimisticProbability = 0.15
)

// buildScenarios spreads the realistic projection into the fixed
// optimistic and pessimistic branches.
func buildScenarios(eac float64, completion time.Time) []Scenario {
	return []Scenario{
		{
			Name:        ScenarioOptimistic,
			Cost:        eac * optimisticCostFactor,
			Completion:  completion.AddDate(0, 0, -optimisticDaysEarly),
			Probability: optimisticProbability,
		},
		{
			Name:        ScenarioRealistic,
			Cost:        eac,
			Completion:  completion,
			Probability: realisticProbability,
		},
		{
			Name:        ScenarioPessimistic,
			Cost:        eac * pessimisticCostFactor,
			Completion:  completion.AddDate(0, 0, pessimisticDaysLate),
			Probability: pessimisticProbability,
		},
	}
}
