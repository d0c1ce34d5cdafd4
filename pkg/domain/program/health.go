package program

import (
	"fmt"

	"github.com/felixgeelhaar/paceline/pkg/domain/evm"
)

// Classification thresholds. These are fixed contract values: a performance
// index below warningThreshold degrades health, below criticalThreshold it
// is critical, and a TCPI above tcpiCriticalThreshold is critical on its own.
const (
	warningThreshold      = 0.95
	criticalThreshold     = 0.85
	tcpiCriticalThreshold = 1.1
)

// HealthStatus is the 3-tier classification of program health.
type HealthStatus string

const (
	// HealthHealthy indicates both performance indices are at or above target.
	HealthHealthy HealthStatus = "healthy"
	// HealthWarning indicates a performance index below target but above critical.
	HealthWarning HealthStatus = "warning"
	// HealthCritical indicates a performance index below the critical boundary.
	HealthCritical HealthStatus = "critical"
)

// IsValid returns true for a known health status.
func (s HealthStatus) IsValid() bool {
	switch s {
	case HealthHealthy, HealthWarning, HealthCritical:
		return true
	}
	return false
}

// String returns the status's wire representation.
func (s HealthStatus) String() string {
	return string(s)
}

// HealthReport is the classified health of one metric set.
type HealthReport struct {
	Status     HealthStatus `json:"status" yaml:"status"`
	Score      float64      `json:"score" yaml:"score"`
	Indicators []string     `json:"indicators,omitempty" yaml:"indicators,omitempty"`
}

// IsHealthy returns true when no threshold was crossed.
func (r HealthReport) IsHealthy() bool {
	return r.Status == HealthHealthy
}

// RequiresAttention returns true for warning or critical health.
func (r HealthReport) RequiresAttention() bool {
	return r.Status != HealthHealthy
}

// ClassifyHealth maps a metric set to its health classification.
//
// The score is a composite weighting CPI and SPI equally: each index
// contributes up to 50 points, capped at its target of 1.0, so the score
// is monotonic in both indices and bounded to [0,100].
func ClassifyHealth(m evm.Metrics) HealthReport {
	report := HealthReport{
		Status: HealthHealthy,
		Score:  healthScore(m),
	}

	report.Status, report.Indicators = classifyIndex(report.Status, report.Indicators,
		"cost efficiency", "CPI", m.CPI)
	report.Status, report.Indicators = classifyIndex(report.Status, report.Indicators,
		"schedule efficiency", "SPI", m.SPI)

	if m.TCPI > tcpiCriticalThreshold {
		report.Status = HealthCritical
		report.Indicators = append(report.Indicators,
			fmt.Sprintf("required remaining efficiency unrealistic (TCPI %.2f above %.2f)", m.TCPI, tcpiCriticalThreshold))
	}

	return report
}

func classifyIndex(status HealthStatus, indicators []string, label, abbrev string, value float64) (HealthStatus, []string) {
	switch {
	case value < criticalThreshold:
		status = HealthCritical
		indicators = append(indicators,
			fmt.Sprintf("%s critically low (%s %.2f below %.2f)", label, abbrev, value, criticalThreshold))
	case value < warningThreshold:
		if status != HealthCritical {
			status = HealthWarning
		}
		indicators = append(indicators,
			fmt.Sprintf("%s below target (%s %.2f below %.2f)", label, abbrev, value, warningThreshold))
	}
	return status, indicators
}

func healthScore(m evm.Metrics) float64 {
	score := 50*capIndex(m.CPI) + 50*capIndex(m.SPI)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func capIndex(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
