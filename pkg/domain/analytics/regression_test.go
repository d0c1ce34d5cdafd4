package analytics

import (
	"math"
	"testing"
)

func TestRegress_PerfectLine(t *testing.T) {
	points := []DataPoint{
		{X: 0, Y: 0},
		{X: 1, Y: 2},
		{X: 2, Y: 4},
		{X: 3, Y: 6},
		{X: 4, Y: 8},
	}

	got := Regress(points)

	if math.Abs(got.Slope-2.0) > 1e-4 {
		t.Errorf("Slope = %v, want 2.0", got.Slope)
	}
	if math.Abs(got.Intercept) > 1e-4 {
		t.Errorf("Intercept = %v, want 0.0", got.Intercept)
	}
	if math.Abs(got.RSquared-1.0) > 1e-4 {
		t.Errorf("RSquared = %v, want 1.0", got.RSquared)
	}
}

func TestRegress_Degenerate(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		got := Regress(nil)
		if got != (RegressionResult{}) {
			t.Errorf("Regress(nil) = %+v, want zero result", got)
		}
	})

	t.Run("single point", func(t *testing.T) {
		got := Regress([]DataPoint{{X: 5, Y: 10}})
		if got.Slope != 0 {
			t.Errorf("Slope = %v, want 0", got.Slope)
		}
		if got.Intercept != 10 {
			t.Errorf("Intercept = %v, want 10", got.Intercept)
		}
		if got.RSquared != 0 {
			t.Errorf("RSquared = %v, want 0", got.RSquared)
		}
	})

	t.Run("identical x values", func(t *testing.T) {
		got := Regress([]DataPoint{{X: 1, Y: 1}, {X: 1, Y: 5}})
		if got != (RegressionResult{}) {
			t.Errorf("Regress with vertical points = %+v, want zero result", got)
		}
	})

	t.Run("flat series has defined r2", func(t *testing.T) {
		got := Regress([]DataPoint{{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}})
		if got.Slope != 0 {
			t.Errorf("Slope = %v, want 0", got.Slope)
		}
		if got.RSquared != 0 {
			t.Errorf("RSquared = %v, want 0 for zero-variance series", got.RSquared)
		}
	})
}

func TestRegressSeries_UsesOrdinalIndices(t *testing.T) {
	got := RegressSeries([]float64{1, 3, 5, 7})

	if math.Abs(got.Slope-2.0) > 1e-9 {
		t.Errorf("Slope = %v, want 2.0", got.Slope)
	}
	if math.Abs(got.Intercept-1.0) > 1e-9 {
		t.Errorf("Intercept = %v, want 1.0", got.Intercept)
	}
}

func TestRegress_NoisyLine(t *testing.T) {
	points := []DataPoint{
		{X: 0, Y: 1.1},
		{X: 1, Y: 1.9},
		{X: 2, Y: 3.2},
		{X: 3, Y: 3.8},
		{X: 4, Y: 5.1},
	}

	got := Regress(points)

	if got.Slope < 0.9 || got.Slope > 1.1 {
		t.Errorf("Slope = %v, want near 1.0", got.Slope)
	}
	if got.RSquared < 0.95 {
		t.Errorf("RSquared = %v, want above 0.95 for near-linear data", got.RSquared)
	}
}
