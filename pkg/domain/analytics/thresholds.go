package analytics

// Default boundaries for trend classification, anomaly detection and
// moving-average smoothing. These are configuration defaults, not fixed
// contract values; callers may override them through NewThresholds.
const (
	DefaultSlopeThreshold      = 0.01
	DefaultZScoreThreshold     = 2.0
	DefaultMovingAverageWindow = 3
)

// Thresholds carries the tunable boundaries of the analytics core.
type Thresholds struct {
	SlopeThreshold      float64 `json:"slope_threshold" yaml:"slope_threshold"`
	ZScoreThreshold     float64 `json:"z_score_threshold" yaml:"z_score_threshold"`
	MovingAverageWindow int     `json:"moving_average_window" yaml:"moving_average_window"`
}

// DefaultThresholds returns the documented default boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{
		SlopeThreshold:      DefaultSlopeThreshold,
		ZScoreThreshold:     DefaultZScoreThreshold,
		MovingAverageWindow: DefaultMovingAverageWindow,
	}
}

// NewThresholds creates validated Thresholds.
func NewThresholds(slope, zscore float64, window int) (Thresholds, error) {
	t := Thresholds{
		SlopeThreshold:      slope,
		ZScoreThreshold:     zscore,
		MovingAverageWindow: window,
	}
	if err := t.Validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}

// Validate checks every boundary against its valid range.
func (t Thresholds) Validate() error {
	if t.SlopeThreshold <= 0 {
		return ErrInvalidSlopeThreshold
	}
	if t.ZScoreThreshold <= 0 {
		return ErrInvalidZScoreThreshold
	}
	if t.MovingAverageWindow < 1 {
		return ErrInvalidWindow
	}
	return nil
}
