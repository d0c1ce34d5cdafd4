package evm

// Metric identifies one field of the metric set for series analysis.
type Metric string

const (
	// MetricCPI selects the cost performance index.
	MetricCPI Metric = "cpi"
	// MetricSPI selects the schedule performance index.
	MetricSPI Metric = "spi"
	// MetricCostVariance selects the cost variance.
	MetricCostVariance Metric = "cv"
	// MetricScheduleVariance selects the schedule variance.
	MetricScheduleVariance Metric = "sv"
	// MetricEAC selects the estimate at completion.
	MetricEAC Metric = "eac"
	// MetricTCPI selects the to-complete performance index.
	MetricTCPI Metric = "tcpi"
	// MetricPercentComplete selects the percent complete.
	MetricPercentComplete Metric = "percent_complete"
)

// IsValid returns true for a known metric selector.
func (m Metric) IsValid() bool {
	switch m {
	case MetricCPI, MetricSPI, MetricCostVariance, MetricScheduleVariance,
		MetricEAC, MetricTCPI, MetricPercentComplete:
		return true
	}
	return false
}

// String returns the selector's wire representation.
func (m Metric) String() string {
	return string(m)
}

// Value extracts the selected field from the metric set.
func (m Metrics) Value(metric Metric) (float64, error) {
	switch metric {
	case MetricCPI:
		return m.CPI, nil
	case MetricSPI:
		return m.SPI, nil
	case MetricCostVariance:
		return m.CostVariance, nil
	case MetricScheduleVariance:
		return m.ScheduleVariance, nil
	case MetricEAC:
		return m.EstimateAtCompletion, nil
	case MetricTCPI:
		return m.TCPI, nil
	case MetricPercentComplete:
		return m.PercentComplete, nil
	}
	return 0, ErrUnknownMetric
}
