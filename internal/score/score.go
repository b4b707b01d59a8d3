// Package score computes the per-student values that rank a cohort.
package score

const (
	MajorMatch = 1.0
	MinorMatch = 0.5
	NoMatch    = 0.0

	// GPAScale normalises a raw GPA in the rank blend.
	GPAScale = 4.0
)

// Interest scores how well a student's interests match target.
// Comparison is exact; empty fields never match.
func Interest(major, minor, target string) float64 {
	switch {
	case target == "":
		return NoMatch
	case major == target:
		return MajorMatch
	case minor == target:
		return MinorMatch
	}
	return NoMatch
}

// Combine blends the fuzzy GPA grade with the interest score into fuzzyTotal, then
// blends fuzzyTotal with the raw GPA into the rank score. Values are not clamped, so a GPA
// above GPAScale yields a rank above 1.
func Combine(fuzzyGPA, interest, gpa float64) (fuzzyTotal, rank float64) {
	fuzzyTotal = 0.5*fuzzyGPA + 0.5*interest
	rank = (fuzzyTotal + gpa/GPAScale) / 2
	return
}
