package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// minARMAObservations is the number of differenced observations needed
// before the AR and MA coefficients are estimated. Shorter series keep both
// at zero, which reduces the model to a random walk.
const minARMAObservations = 3

// coefBound keeps fitted coefficients strictly inside (-1, 1) so the AR part
// stays stationary and the MA part invertible.
const coefBound = 0.999

// ARIMA is a fitted ARIMA(1,1,1) model without drift
type ARIMA struct {
	Phi   float64 // AR(1) coefficient of the differenced series
	Theta float64 // MA(1) coefficient
	SSE   float64 // conditional sum of squared residuals

	last     float64
	lastDiff float64
	lastErr  float64
}

// FitARIMA111 fits an ARIMA(1,1,1) model by conditional sum of squares
func FitARIMA111(series []float64) (*ARIMA, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	if !allFinite(series) {
		return nil, ErrNonFinite
	}

	m := &ARIMA{last: series[len(series)-1]}
	diffs := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		diffs = append(diffs, series[i]-series[i-1])
	}
	if len(diffs) > 0 {
		m.lastDiff = diffs[len(diffs)-1]
	}
	if len(diffs) < minARMAObservations {
		return m, nil
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			sse, _ := css(diffs, bounded(x[0]), bounded(x[1]))
			return sse
		},
	}
	result, err := optimize.Minimize(problem, []float64{0, 0}, nil, &optimize.NelderMead{})
	if result == nil || !allFinite(result.X) {
		if err == nil {
			err = ErrNonFinite
		}
		return nil, fmt.Errorf("stats: arima fit: %w", err)
	}

	m.Phi, m.Theta = bounded(result.X[0]), bounded(result.X[1])
	m.SSE, m.lastErr = css(diffs, m.Phi, m.Theta)
	if math.IsNaN(m.SSE) || math.IsInf(m.SSE, 0) {
		return nil, ErrNonFinite
	}
	return m, nil
}

// Forecast returns the next steps levels of the series
func (m *ARIMA) Forecast(steps int) []float64 {
	out := make([]float64, 0, steps)
	level, d, e := m.last, m.lastDiff, m.lastErr
	for i := 0; i < steps; i++ {
		d = m.Phi*d + m.Theta*e
		e = 0
		level += d
		out = append(out, level)
	}
	return out
}

// css returns the conditional sum of squares and the final residual of an
// ARMA(1,1) over the differenced series, conditioning on e_0 = 0.
func css(diffs []float64, phi, theta float64) (float64, float64) {
	var sse, e float64
	for t := 1; t < len(diffs); t++ {
		e = diffs[t] - phi*diffs[t-1] - theta*e
		sse += e * e
	}
	return sse, e
}

// bounded maps an unconstrained optimizer value into (-coefBound, coefBound)
func bounded(x float64) float64 {
	return coefBound * math.Tanh(x)
}
