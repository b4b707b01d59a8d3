// Package report summarizes grouped cohorts for display.
package report

import (
	"fmt"
	"io"
	"math"
	"slices"
	"text/tabwriter"

	"github.com/yyyoichi/studygroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultBins is the bucket count of the distribution histograms.
const DefaultBins = 10

// Summary describes one group.
type Summary struct {
	GroupID        int
	Size           int
	MeanGPA        float64
	MeanFuzzyTotal float64
}

// Summarize computes per-group means in group order. It returns nil for an empty result.
func Summarize(res *studygroup.Result) []Summary {
	if res == nil || len(res.Groups) == 0 {
		return nil
	}
	out := make([]Summary, 0, len(res.Groups))
	for _, g := range res.Groups {
		gpas := make([]float64, len(g.Members))
		totals := make([]float64, len(g.Members))
		for i, m := range g.Members {
			gpas[i] = m.GPA
			totals[i] = m.FuzzyTotal
		}
		s := Summary{GroupID: g.ID, Size: len(g.Members)}
		if len(g.Members) > 0 {
			s.MeanGPA = stat.Mean(gpas, nil)
			s.MeanFuzzyTotal = stat.Mean(totals, nil)
		}
		out = append(out, s)
	}
	return out
}

// Histogram is a binned count of values. Edges has one more element than Counts; the last
// bin includes its upper edge.
type Histogram struct {
	Edges  []float64
	Counts []float64
}

// NewHistogram bins values into equal-width bins spanning their range. A constant series is
// centred in a bin range of width 1. No values give a zero Histogram.
func NewHistogram(values []float64, bins int) Histogram {
	if len(values) == 0 || bins < 1 {
		return Histogram{}
	}
	x := slices.Clone(values)
	slices.Sort(x)
	lo, hi := floats.Min(x), floats.Max(x)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)

	dividers := slices.Clone(edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, x, nil)
	return Histogram{Edges: edges, Counts: counts}
}

// Labels names every bin by its lower and upper edge.
func (h Histogram) Labels() []string {
	labels := make([]string, len(h.Counts))
	for i := range h.Counts {
		labels[i] = fmt.Sprintf("%.2f-%.2f", h.Edges[i], h.Edges[i+1])
	}
	return labels
}

// WriteTable prints one table per group listing its members in assignment order.
func WriteTable(w io.Writer, res *studygroup.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, g := range res.Groups {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "Kelompok %d\n", g.ID)
		fmt.Fprintln(tw, "No\tNama\tIPK\tFuzzy_Total\tMajor\tMinor")
		for n, m := range g.Members {
			fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%s\t%s\n", n+1, m.Name, m.GPA, m.FuzzyTotal, m.Major, m.Minor)
		}
	}
	return tw.Flush()
}

// WriteSummary prints the per-group means.
func WriteSummary(w io.Writer, summaries []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Kelompok\tJumlah\tRata_IPK\tRata_Fuzzy")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\n", s.GroupID, s.Size, s.MeanGPA, s.MeanFuzzyTotal)
	}
	return tw.Flush()
}
