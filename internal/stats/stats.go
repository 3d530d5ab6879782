// Package stats holds the small statistical models used by the savings
// analyzer: a least-squares line, one-dimensional k-means and an
// ARIMA(1,1,1) forecaster.
package stats

import (
	"errors"
	"math"
)

var (
	// ErrEmptySeries is returned when a model is fit on no observations.
	ErrEmptySeries = errors.New("stats: empty series")
	// ErrLengthMismatch is returned when inputs and targets differ in length.
	ErrLengthMismatch = errors.New("stats: length mismatch")
	// ErrNonFinite is returned when an observation is NaN or infinite.
	ErrNonFinite = errors.New("stats: non-finite observation")
)

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
