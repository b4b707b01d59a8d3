package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterest(t *testing.T) {
	test := []struct {
		name                 string
		major, minor, target string
		exp                  float64
	}{
		{"major", "Artificial Intelligence", "Sistem Informasi", "Artificial Intelligence", 1.0},
		{"major_and_minor", "Artificial Intelligence", "Artificial Intelligence", "Artificial Intelligence", 1.0},
		{"minor", "Jaringan Komputer", "Artificial Intelligence", "Artificial Intelligence", 0.5},
		{"none", "Jaringan Komputer", "Sistem Informasi", "Artificial Intelligence", 0.0},
		{"empty_fields", "", "", "Artificial Intelligence", 0.0},
		{"case_sensitive", "artificial intelligence", "", "Artificial Intelligence", 0.0},
		{"empty_target", "", "", "", 0.0},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, Interest(tt.major, tt.minor, tt.target))
		})
	}
}

func TestCombine(t *testing.T) {
	test := []struct {
		fuzzyGPA, interest, gpa float64
		expTotal, expRank       float64
	}{
		{1.0, 1.0, 4.0, 1.0, 1.0},
		{0.0, 0.0, 0.0, 0.0, 0.0},
		{0.5, 0.0, 3.0, 0.25, 0.5},
		{0.2, 0.5, 2.0, 0.35, 0.425},
		{1.0, 0.0, 4.4, 0.5, 0.8},
	}
	for _, tt := range test {
		total, rank := Combine(tt.fuzzyGPA, tt.interest, tt.gpa)
		assert.InDelta(t, tt.expTotal, total, 1e-12)
		assert.InDelta(t, tt.expRank, rank, 1e-12)
	}
}
