package stats

import (
	"gonum.org/v1/gonum/stat"
)

// LinearModel is y = Intercept + Slope*x
type LinearModel struct {
	Intercept float64
	Slope     float64
}

// Predict evaluates the model at x
func (m LinearModel) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// FitLinear fits an ordinary least-squares line. When every x is the same
// (a single observation included) the slope is undetermined and the
// minimum-norm solution is returned: slope 0, intercept mean(y).
func FitLinear(xs, ys []float64) (LinearModel, error) {
	if len(xs) == 0 {
		return LinearModel{}, ErrEmptySeries
	}
	if len(xs) != len(ys) {
		return LinearModel{}, ErrLengthMismatch
	}
	if !allFinite(xs) || !allFinite(ys) {
		return LinearModel{}, ErrNonFinite
	}
	if constant(xs) {
		return LinearModel{Intercept: stat.Mean(ys, nil)}, nil
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return LinearModel{Intercept: alpha, Slope: beta}, nil
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
