package studygroup

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/yyyoichi/studygroup/internal/fuzzy"
	"github.com/yyyoichi/studygroup/internal/kmeans"
	"github.com/yyyoichi/studygroup/internal/score"
	"github.com/yyyoichi/studygroup/internal/serpentine"
)

var (
	ErrMissingSelection = errors.New("target interest is not selected")
	ErrInvalidGroupSize = serpentine.ErrInvalidGroupSize
	ErrInvalidGPA       = errors.New("gpa is not a finite number")
	ErrClustering       = errors.New("gpa clustering failed")
	ErrInvalidOption    = errors.New("invalid option")
)

const (
	DefaultClusterCount       = 7
	DefaultSeed         int64 = 42
)

// ComputeGroups ranks students and distributes them into groups of groupSize.
// This is a convenience function that creates a Grouper and calls its Compute method.
func ComputeGroups(ctx context.Context, students []Student, targetInterest string, groupSize int, opts ...Option) (*Result, error) {
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return g.Compute(ctx, students, targetInterest, groupSize)
}

type Grouper struct {
	clusterCount int
	seed         int64
	initRuns     int
	maxIter      int
	parallelism  int
	clusterer    Clusterer
}

// New initializes a Grouper.
// For default values, refer to the init function.
func New(opts ...Option) (*Grouper, error) {
	g := new(Grouper)
	if err := g.init(opts...); err != nil {
		return nil, err
	}
	return g, nil
}

// Compute ranks the cohort and distributes it into study groups.
//
// Process:
//  1. Scores each student's interest against targetInterest.
//  2. Clusters all GPAs and grades each student by the rank of their cluster.
//  3. Blends both into a fuzzy total, then blends that with GPA/4 into a rank score.
//  4. Sorts by rank score, highest first, keeping input order for equal scores.
//  5. Deals the sorted students over ceil(n/groupSize) groups in serpentine order.
//
// Validation happens before any work: a blank targetInterest returns ErrMissingSelection,
// a groupSize below 2 returns ErrInvalidGroupSize and a NaN or infinite GPA returns
// ErrInvalidGPA. An empty cohort yields an empty Result. students is never modified.
func (g *Grouper) Compute(ctx context.Context, students []Student, targetInterest string, groupSize int) (*Result, error) {
	if strings.TrimSpace(targetInterest) == "" {
		return nil, ErrMissingSelection
	}
	if groupSize < serpentine.MinGroupSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGroupSize, groupSize)
	}
	for i, s := range students {
		if math.IsNaN(s.GPA) || math.IsInf(s.GPA, 0) {
			return nil, fmt.Errorf("%w: student %d (%q)", ErrInvalidGPA, i+1, s.Name)
		}
	}

	res := &Result{Records: make([]Record, len(students))}
	if len(students) == 0 {
		return res, nil
	}

	gpas := make([]float64, len(students))
	for i, s := range students {
		res.Records[i] = Record{
			Student:       s,
			InterestScore: score.Interest(s.Major, s.Minor, targetInterest),
		}
		gpas[i] = s.GPA
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grades, err := fuzzy.Grade(g.clusterer, gpas)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClustering, err)
	}
	ranks := make([]float64, len(students))
	for i := range res.Records {
		r := &res.Records[i]
		r.FuzzyGPA = grades[i]
		r.FuzzyTotal, r.RankScore = score.Combine(r.FuzzyGPA, r.InterestScore, r.GPA)
		ranks[i] = r.RankScore
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	order := serpentine.Order(ranks)
	positions, err := serpentine.Distribute(len(order), groupSize)
	if err != nil {
		return nil, err
	}
	res.Groups = make([]Group, len(positions))
	for gi, members := range positions {
		grp := Group{ID: gi + 1, Members: make([]*Record, 0, len(members))}
		for _, pos := range members {
			rec := &res.Records[order[pos]]
			rec.GroupID = grp.ID
			grp.Members = append(grp.Members, rec)
		}
		res.Groups[gi] = grp
	}
	return res, nil
}

// ClusterCount reports the configured cluster count.
func (g *Grouper) ClusterCount() int { return g.clusterCount }

// Seed reports the configured clustering seed.
func (g *Grouper) Seed() int64 { return g.seed }

func (g *Grouper) init(opts ...Option) error {
	g.seed = DefaultSeed
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return err
		}
	}
	if g.clusterCount == 0 {
		g.clusterCount = DefaultClusterCount
	}
	if g.initRuns == 0 {
		g.initRuns = kmeans.DefaultRuns
	}
	if g.maxIter == 0 {
		g.maxIter = kmeans.DefaultMaxIterations
	}
	if g.parallelism == 0 {
		g.parallelism = kmeans.DefaultParallelism
	}
	if g.clusterer == nil {
		g.clusterer = fuzzy.KMeans{
			K: g.clusterCount,
			Options: []kmeans.Option{
				kmeans.WithSeed(g.seed),
				kmeans.WithRuns(g.initRuns),
				kmeans.WithMaxIterations(g.maxIter),
				kmeans.WithParallelism(g.parallelism),
			},
		}
	}
	return nil
}
