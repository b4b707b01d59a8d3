package kmeans

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidK    = errors.New("kmeans: cluster count must be at least 1")
	ErrEmpty       = errors.New("kmeans: no values to cluster")
	ErrInvalidOpts = errors.New("kmeans: invalid option")
)

const (
	DefaultSeed          int64 = 42
	DefaultRuns                = 10
	DefaultMaxIterations       = 300
	DefaultParallelism         = 1
)

type config struct {
	seed        int64
	runs        int
	maxIter     int
	parallelism int
	tol         float64
}

// Option configures Fit.
type Option func(*config) error

// WithSeed fixes the random source used for centroid initialisation.
// Fitting the same values with the same seed always yields the same model.
func WithSeed(seed int64) Option {
	return func(c *config) error {
		c.seed = seed
		return nil
	}
}

// WithRuns sets how many independently initialised runs are tried.
// The run with the lowest inertia is kept.
func WithRuns(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: runs %d", ErrInvalidOpts, n)
		}
		c.runs = n
		return nil
	}
}

// WithMaxIterations bounds the Lloyd iterations of a single run.
func WithMaxIterations(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: max iterations %d", ErrInvalidOpts, n)
		}
		c.maxIter = n
		return nil
	}
}

// WithParallelism bounds how many runs execute at the same time.
// It has no effect on the fitted model.
func WithParallelism(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: parallelism %d", ErrInvalidOpts, n)
		}
		c.parallelism = n
		return nil
	}
}

// Model is a partition of a one-dimensional axis into clusters.
type Model struct {
	centroids []float64
	inertia   float64
}

// Centroids returns a copy of the cluster centers, indexed by cluster.
func (m *Model) Centroids() []float64 { return slices.Clone(m.centroids) }

// K is the number of clusters in the model.
func (m *Model) K() int { return len(m.centroids) }

// Inertia is the sum of squared distances of the fitted values to their centroid.
func (m *Model) Inertia() float64 { return m.inertia }

// Assign returns the index of the centroid nearest to v.
// Equidistant centroids resolve to the lower index.
func (m *Model) Assign(v float64) int { return nearest(m.centroids, v) }

// Fit clusters values into at most k groups.
//
// The algorithm runs several k-means++ initialised Lloyd iterations, each seeded from a
// sequence derived from the configured seed, and keeps the run with the lowest inertia.
// Ties between runs resolve to the earliest run, so the result does not depend on the
// parallelism setting.
//
// When values contain no more than k distinct numbers, each distinct number becomes its own
// centroid (sorted ascending) and no random initialisation takes place. The model may
// therefore hold fewer than k clusters.
func Fit(values []float64, k int, opts ...Option) (*Model, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	c := config{
		seed:        DefaultSeed,
		runs:        DefaultRuns,
		maxIter:     DefaultMaxIterations,
		parallelism: DefaultParallelism,
		tol:         math.Pow10(-6),
	}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}

	distinct := slices.Clone(values)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	if len(distinct) <= k {
		return &Model{centroids: distinct}, nil
	}

	rd := rand.New(rand.NewSource(c.seed))
	seeds := make([]int64, c.runs)
	for i := range seeds {
		seeds[i] = rd.Int63()
	}

	models := make([]*Model, c.runs)
	var g errgroup.Group
	g.SetLimit(c.parallelism)
	for i := range c.runs {
		g.Go(func() error {
			models[i] = lloyd(values, k, seeds[i], c)
			return nil
		})
	}
	_ = g.Wait()

	best := models[0]
	for _, m := range models[1:] {
		if m.inertia < best.inertia {
			best = m
		}
	}
	return best, nil
}

func lloyd(values []float64, k int, seed int64, c config) *Model {
	rd := rand.New(rand.NewSource(seed))
	centers := initCenters(values, k, rd)
	labels := make([]int, len(values))

	for range c.maxIter {
		stores := make([]memberStore, k)
		for i, v := range values {
			labels[i] = nearest(centers, v)
			stores[labels[i]].add(v)
		}
		next := make([]float64, k)
		for j := range stores {
			if mean, ok := stores[j].mean(); ok {
				next[j] = mean
			} else {
				next[j] = centers[j]
			}
		}
		relocateEmpty(values, labels, next, stores)

		var shift float64
		for j := range next {
			d := next[j] - centers[j]
			shift += d * d
		}
		centers = next
		if shift <= c.tol {
			break
		}
	}

	m := &Model{centroids: centers}
	for _, v := range values {
		d := v - centers[m.Assign(v)]
		m.inertia += d * d
	}
	return m
}

// initCenters picks k starting centers with k-means++ seeding: the first uniformly, the
// rest with probability proportional to the squared distance to the nearest chosen center.
func initCenters(values []float64, k int, rd *rand.Rand) []float64 {
	centers := make([]float64, 0, k)
	centers = append(centers, values[rd.Intn(len(values))])
	dist := make([]float64, len(values))
	for len(centers) < k {
		for i, v := range values {
			d := v - centers[nearest(centers, v)]
			dist[i] = d * d
		}
		total := floats.Sum(dist)
		if total == 0 {
			break
		}
		target := rd.Float64() * total
		pick := -1
		var acc float64
		for i, d := range dist {
			acc += d
			if d > 0 && acc > target {
				pick = i
				break
			}
		}
		if pick < 0 {
			// rounding left target beyond the accumulated sum
			for i := len(dist) - 1; i >= 0; i-- {
				if dist[i] > 0 {
					pick = i
					break
				}
			}
		}
		centers = append(centers, values[pick])
	}
	for len(centers) < k {
		centers = append(centers, centers[len(centers)-1])
	}
	return centers
}

// relocateEmpty moves every empty cluster onto the value farthest from its own centroid.
func relocateEmpty(values []float64, labels []int, centers []float64, stores []memberStore) {
	used := make(map[int]bool)
	for j := range stores {
		if !stores[j].empty() {
			continue
		}
		far, farDist := -1, -1.0
		for i, v := range values {
			if used[i] {
				continue
			}
			d := v - centers[labels[i]]
			if d*d > farDist {
				far, farDist = i, d*d
			}
		}
		if far < 0 {
			continue
		}
		used[far] = true
		centers[j] = values[far]
	}
}

func nearest(centers []float64, v float64) int {
	idx, best := 0, math.Inf(1)
	for j, c := range centers {
		if d := math.Abs(v - c); d < best {
			idx, best = j, d
		}
	}
	return idx
}
