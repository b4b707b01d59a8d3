package studygroup

import "fmt"

type Option func(*Grouper) error

// WithClusterCount sets how many GPA clusters the fuzzy grading uses.
// The grades are spread evenly over [0, 1], one per cluster, so a larger count gives a finer
// ladder. Cohorts with fewer distinct GPAs than the count are graded on the distinct values.
func WithClusterCount(k int) Option {
	return func(g *Grouper) error {
		if k < 1 {
			return fmt.Errorf("%w: cluster count %d", ErrInvalidOption, k)
		}
		g.clusterCount = k
		return nil
	}
}

// WithSeed fixes the seed of the clustering initialisation.
// Identical input with an identical seed always yields identical groups.
func WithSeed(seed int64) Option {
	return func(g *Grouper) error {
		g.seed = seed
		return nil
	}
}

// WithInitRuns sets how many clustering initialisations are tried; the tightest fit wins.
func WithInitRuns(n int) Option {
	return func(g *Grouper) error {
		if n < 1 {
			return fmt.Errorf("%w: init runs %d", ErrInvalidOption, n)
		}
		g.initRuns = n
		return nil
	}
}

// WithMaxIterations bounds the refinement steps of each clustering run.
func WithMaxIterations(n int) Option {
	return func(g *Grouper) error {
		if n < 1 {
			return fmt.Errorf("%w: max iterations %d", ErrInvalidOption, n)
		}
		g.maxIter = n
		return nil
	}
}

// WithParallelism bounds how many clustering runs execute concurrently.
// The default is 1. Output does not depend on this value.
func WithParallelism(n int) Option {
	return func(g *Grouper) error {
		if n < 1 {
			return fmt.Errorf("%w: parallelism %d", ErrInvalidOption, n)
		}
		g.parallelism = n
		return nil
	}
}

// WithClusterer replaces the built-in k-means. The cluster count, seed, init runs,
// max iterations and parallelism options are then ignored.
func WithClusterer(c Clusterer) Option {
	return func(g *Grouper) error {
		if c == nil {
			return fmt.Errorf("%w: nil clusterer", ErrInvalidOption)
		}
		g.clusterer = c
		return nil
	}
}
