package analytics

import (
	"math"
	"testing"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name  string
		slope float64
		want  TrendDirection
	}{
		{name: "rising slope", slope: 0.02, want: TrendImproving},
		{name: "falling slope", slope: -0.02, want: TrendDeclining},
		{name: "slope inside threshold", slope: 0.005, want: TrendStable},
		{name: "slope exactly at threshold", slope: 0.01, want: TrendStable},
		{name: "zero slope", slope: 0, want: TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTrend(tt.slope, DefaultSlopeThreshold); got != tt.want {
				t.Errorf("ClassifyTrend(%v) = %v, want %v", tt.slope, got, tt.want)
			}
		})
	}
}

func TestAnalyzeSeries_RisingCPI(t *testing.T) {
	// Six monthly CPI observations rising from 0.85 to 1.05 in equal steps.
	values := []float64{0.85, 0.89, 0.93, 0.97, 1.01, 1.05}

	got, err := AnalyzeSeries(values, DefaultThresholds())
	if err != nil {
		t.Fatalf("AnalyzeSeries failed: %v", err)
	}

	if got.Direction != TrendImproving {
		t.Errorf("Direction = %v, want improving", got.Direction)
	}
	if got.Regression.Slope <= 0.01 {
		t.Errorf("Slope = %v, want above 0.01", got.Regression.Slope)
	}
	if math.Abs(got.Regression.Slope-0.04) > 1e-9 {
		t.Errorf("Slope = %v, want 0.04", got.Regression.Slope)
	}
	if got.CurrentValue != 1.05 {
		t.Errorf("CurrentValue = %v, want 1.05", got.CurrentValue)
	}
	if math.Abs(got.AverageValue-0.95) > 1e-9 {
		t.Errorf("AverageValue = %v, want 0.95", got.AverageValue)
	}
	if got.Samples != 6 {
		t.Errorf("Samples = %d, want 6", got.Samples)
	}
	if !got.IsPositive() {
		t.Error("Expected IsPositive for an improving series")
	}
}

func TestAnalyzeSeries_DecliningSeries(t *testing.T) {
	values := []float64{1.05, 1.01, 0.97, 0.93, 0.89, 0.85}

	got, err := AnalyzeSeries(values, DefaultThresholds())
	if err != nil {
		t.Fatalf("AnalyzeSeries failed: %v", err)
	}

	if got.Direction != TrendDeclining {
		t.Errorf("Direction = %v, want declining", got.Direction)
	}
	if !got.IsNegative() {
		t.Error("Expected IsNegative for a declining series")
	}
}

func TestAnalyzeSeries_Degenerate(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		got, err := AnalyzeSeries(nil, DefaultThresholds())
		if err != nil {
			t.Fatalf("AnalyzeSeries failed: %v", err)
		}
		if got.Direction != TrendStable {
			t.Errorf("Direction = %v, want stable", got.Direction)
		}
		if got.Regression != (RegressionResult{}) {
			t.Errorf("Regression = %+v, want zero result", got.Regression)
		}
		if got.CurrentValue != 0 || got.AverageValue != 0 || got.Volatility != 0 {
			t.Errorf("Expected all-zero outputs, got %+v", got)
		}
	})

	t.Run("single point", func(t *testing.T) {
		got, err := AnalyzeSeries([]float64{4.2}, DefaultThresholds())
		if err != nil {
			t.Fatalf("AnalyzeSeries failed: %v", err)
		}
		if got.Regression.Slope != 0 {
			t.Errorf("Slope = %v, want 0", got.Regression.Slope)
		}
		if got.Regression.Intercept != 4.2 {
			t.Errorf("Intercept = %v, want 4.2", got.Regression.Intercept)
		}
		if got.Regression.RSquared != 0 {
			t.Errorf("RSquared = %v, want 0", got.Regression.RSquared)
		}
		if got.CurrentValue != 4.2 || got.AverageValue != 4.2 {
			t.Errorf("Current/Average = %v/%v, want 4.2/4.2", got.CurrentValue, got.AverageValue)
		}
		if got.Direction != TrendStable {
			t.Errorf("Direction = %v, want stable", got.Direction)
		}
	})
}

func TestAnalyzeSeries_InvalidThresholds(t *testing.T) {
	_, err := AnalyzeSeries([]float64{1, 2}, Thresholds{SlopeThreshold: -1, ZScoreThreshold: 2, MovingAverageWindow: 3})
	if err != ErrInvalidSlopeThreshold {
		t.Errorf("error = %v, want ErrInvalidSlopeThreshold", err)
	}
}

func TestTrendDirection_IsValid(t *testing.T) {
	for _, d := range []TrendDirection{TrendImproving, TrendDeclining, TrendStable} {
		if !d.IsValid() {
			t.Errorf("Expected %s to be valid", d)
		}
	}
	if TrendDirection("sideways").IsValid() {
		t.Error("Expected unknown direction to be invalid")
	}
}
