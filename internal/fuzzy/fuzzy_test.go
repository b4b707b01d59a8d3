package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/studygroup/internal/kmeans"
)

func TestLadder(t *testing.T) {
	test := []struct {
		name      string
		centroids []float64
		exp       []float64
	}{
		{"sorted", []float64{1, 2, 3}, []float64{0, 0.5, 1}},
		{"unsorted", []float64{3.5, 1.0, 2.0, 4.0, 3.0}, []float64{0.75, 0, 0.25, 1, 0.5}},
		{"duplicates_keep_index_order", []float64{2, 1, 2}, []float64{0.5, 0, 1}},
		{"single", []float64{3.1}, []float64{0}},
		{"empty", nil, []float64{}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got := Ladder(tt.centroids)
			require.Len(t, got, len(tt.exp))
			for i := range tt.exp {
				assert.InDelta(t, tt.exp[i], got[i], 1e-12)
			}
		})
	}
}

func TestGrade(t *testing.T) {
	c := KMeans{K: 7, Options: []kmeans.Option{kmeans.WithSeed(42)}}

	t.Run("one_cluster_per_value", func(t *testing.T) {
		got, err := Grade(c, []float64{4.0, 3.0, 3.5, 2.0, 3.8, 1.0})
		require.NoError(t, err)
		exp := []float64{1.0, 0.4, 0.6, 0.2, 0.8, 0.0}
		for i := range exp {
			assert.InDelta(t, exp[i], got[i], 1e-12)
		}
	})
	t.Run("identical_values", func(t *testing.T) {
		got, err := Grade(c, []float64{3.0, 3.0, 3.0})
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0}, got)
	})
	t.Run("within_unit_interval", func(t *testing.T) {
		gpas := make([]float64, 60)
		for i := range gpas {
			gpas[i] = float64(i%23) * 0.19
		}
		got, err := Grade(c, gpas)
		require.NoError(t, err)
		var seenLow, seenHigh bool
		for i, g := range got {
			assert.GreaterOrEqual(t, g, 0.0)
			assert.LessOrEqual(t, g, 1.0)
			seenLow = seenLow || g == 0
			seenHigh = seenHigh || g == 1
			// higher GPA never receives a lower grade
			for j := range got {
				if gpas[j] > gpas[i] {
					assert.GreaterOrEqual(t, got[j], g)
				}
			}
		}
		assert.True(t, seenLow)
		assert.True(t, seenHigh)
	})
	t.Run("empty", func(t *testing.T) {
		got, err := Grade(c, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

type badModel struct{}

func (badModel) Assign(float64) int { return 5 }
func (badModel) Centroids() []float64 { return []float64{1} }
func (badModel) Fit([]float64) (Model, error) { return badModel{}, nil }

func TestGradeRejectsOutOfRangeAssignment(t *testing.T) {
	_, err := Grade(badModel{}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrAssignment)
}
