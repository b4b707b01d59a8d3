package studygroup

import "github.com/yyyoichi/studygroup/internal/fuzzy"

type (
	// Clusterer partitions the cohort's GPA values. Implementations must be deterministic
	// for identical input; randomised ones should take a fixed seed at construction.
	Clusterer = fuzzy.Clusterer

	// ClusterModel is a fitted partition returned by a Clusterer.
	ClusterModel = fuzzy.Model
)

// Student is one input row.
type Student struct {
	Name  string
	GPA   float64
	Major string
	Minor string
}

// Record is a Student with the values computed while grouping.
type Record struct {
	Student

	// InterestScore is 1 for a major match, 0.5 for a minor match, otherwise 0.
	InterestScore float64
	// FuzzyGPA is the grade of the student's GPA cluster, in [0, 1].
	FuzzyGPA float64
	// FuzzyTotal blends FuzzyGPA and InterestScore equally, in [0, 1].
	FuzzyTotal float64
	// RankScore blends FuzzyTotal with GPA/4 and orders the cohort.
	RankScore float64
	// GroupID is the 1-based group the student was assigned to.
	GroupID int
}

type Group struct {
	ID      int
	Members []*Record
}

// Result holds the augmented records in input order and the groups they were assigned to.
type Result struct {
	Records []Record
	Groups  []Group
}

// Filter returns copies of the records assigned to groupID, in input order.
func (r *Result) Filter(groupID int) []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.GroupID == groupID {
			out = append(out, rec)
		}
	}
	return out
}

// Sizes returns the member count of each group, indexed by ID-1.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Groups))
	for i, g := range r.Groups {
		sizes[i] = len(g.Members)
	}
	return sizes
}
