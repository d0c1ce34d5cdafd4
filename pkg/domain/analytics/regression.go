package analytics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// DataPoint is a single (index, value) observation used for regression.
type DataPoint struct {
	X float64
	Y float64
}

// RegressionResult holds an ordinary least-squares fit.
type RegressionResult struct {
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
	RSquared  float64 `json:"r_squared" yaml:"r_squared"`
}

// Regress fits an ordinary least-squares line over the points.
// Fewer than two points is a degenerate case, not an error: an empty
// series yields the zero result, and a single point yields slope 0 with
// the intercept at that point's value.
func Regress(points []DataPoint) RegressionResult {
	switch len(points) {
	case 0:
		return RegressionResult{}
	case 1:
		return RegressionResult{Intercept: points[0].Y}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		// All x values identical; no line can be fit.
		return RegressionResult{}
	}

	r2 := stat.RSquared(xs, ys, nil, intercept, slope)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		// Zero variance in y leaves r2 undefined.
		r2 = 0
	}

	return RegressionResult{Slope: slope, Intercept: intercept, RSquared: r2}
}

// RegressSeries fits over values taken at their ordinal indices 0..n-1.
func RegressSeries(values []float64) RegressionResult {
	points := make([]DataPoint, len(values))
	for i, v := range values {
		points[i] = DataPoint{X: float64(i), Y: v}
	}
	return Regress(points)
}
