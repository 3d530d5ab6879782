package stats

import (
	"fmt"
	"math"
)

const kmeansMaxIterations = 100

// Clustering is the result of KMeans1D
type Clustering struct {
	Labels    []int
	Centroids []float64
}

// KMeans1D partitions values into k clusters. Seeding is deterministic:
// the first value, then repeatedly the value farthest from every chosen
// centroid. Labels are centroid indexes in seeding order.
func KMeans1D(values []float64, k int) (Clustering, error) {
	if len(values) == 0 {
		return Clustering{}, ErrEmptySeries
	}
	if k <= 0 || k > len(values) {
		return Clustering{}, fmt.Errorf("stats: k must be in [1, %d], got %d", len(values), k)
	}
	if !allFinite(values) {
		return Clustering{}, ErrNonFinite
	}

	centroids := seed(values, k)
	labels := make([]int, len(values))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, v := range values {
			if l := nearest(v, centroids); l != labels[i] {
				labels[i] = l
				changed = true
			}
		}
		if !changed {
			break
		}
		sums := make([]float64, k)
		counts := make([]int, k)
		for i, v := range values {
			sums[labels[i]] += v
			counts[labels[i]]++
		}
		for c := range centroids {
			// empty clusters keep their previous centroid
			if counts[c] > 0 {
				centroids[c] = sums[c] / float64(counts[c])
			}
		}
	}
	return Clustering{Labels: labels, Centroids: centroids}, nil
}

func seed(values []float64, k int) []float64 {
	centroids := []float64{values[0]}
	for len(centroids) < k {
		best, bestDist := values[0], -1.0
		for _, v := range values {
			d := math.Abs(v - centroids[nearest(v, centroids)])
			if d > bestDist {
				best, bestDist = v, d
			}
		}
		centroids = append(centroids, best)
	}
	return centroids
}

func nearest(v float64, centroids []float64) int {
	best := 0
	for c := 1; c < len(centroids); c++ {
		if math.Abs(v-centroids[c]) < math.Abs(v-centroids[best]) {
			best = c
		}
	}
	return best
}
