package fuzzy

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/yyyoichi/studygroup/internal/kmeans"
	"gonum.org/v1/gonum/floats"
)

var ErrAssignment = errors.New("fuzzy: cluster index out of range")

// Model is a fitted partition of the GPA axis.
type Model interface {
	// Assign returns the cluster index of v.
	Assign(v float64) int
	// Centroids returns the cluster centers indexed by cluster.
	Centroids() []float64
}

// Clusterer fits a Model over a cohort's values.
type Clusterer interface {
	Fit(values []float64) (Model, error)
}

// KMeans is the default Clusterer, backed by one-dimensional k-means.
type KMeans struct {
	K       int
	Options []kmeans.Option
}

func (c KMeans) Fit(values []float64) (Model, error) {
	m, err := kmeans.Fit(values, c.K, c.Options...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Ladder maps each centroid to a grade. Centroids are ranked ascending and the ranks
// receive evenly spaced grades from 0 to 1 inclusive. Equal centroids keep index order.
// A single centroid is graded 0.
func Ladder(centroids []float64) []float64 {
	k := len(centroids)
	order := make([]int, k)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(centroids[a], centroids[b])
	})
	steps := make([]float64, k)
	if k > 1 {
		floats.Span(steps, 0, 1)
	}
	grades := make([]float64, k)
	for rank, idx := range order {
		grades[idx] = steps[rank]
	}
	return grades
}

// Grade fits c over gpas and returns the fuzzy grade of every value, in input order.
func Grade(c Clusterer, gpas []float64) ([]float64, error) {
	if len(gpas) == 0 {
		return nil, nil
	}
	model, err := c.Fit(gpas)
	if err != nil {
		return nil, err
	}
	ladder := Ladder(model.Centroids())
	out := make([]float64, len(gpas))
	for i, v := range gpas {
		j := model.Assign(v)
		if j < 0 || j >= len(ladder) {
			return nil, fmt.Errorf("%w: %d of %d", ErrAssignment, j, len(ladder))
		}
		out[i] = ladder[j]
	}
	return out, nil
}
