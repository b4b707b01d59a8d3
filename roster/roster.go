// Package roster reads student tables into studygroup input and writes grouped results back
// out as delimited text or spreadsheets.
package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yyyoichi/studygroup"
)

// Placeholder is the unselected entry of an interest picker.
const Placeholder = "-- Pilih Mata Kuliah --"

var (
	// Interests is the default selectable course catalog.
	Interests = []string{
		"Artificial Intelligence",
		"Jaringan Komputer",
		"Sistem Informasi",
	}

	ErrMissingColumn = errors.New("required column is missing")
	ErrInvalidGPA    = errors.New("invalid gpa value")
	ErrUnknownFormat = errors.New("unknown roster format")
)

const (
	colName  = "nama"
	colGPA   = "ipk"
	colMajor = "major"
	colMinor = "minor"
)

// ValidInterest reports whether s is an actual selection rather than blank or Placeholder.
func ValidInterest(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != Placeholder
}

// NormalizeHeader trims and lower-cases a header cell; a UTF-8 byte order mark is dropped.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

// parseRows turns a header row plus data rows into students.
// Rows whose cells are all blank are skipped; row numbers in errors are 1-based and count
// the header.
func parseRows(rows [][]string) ([]studygroup.Student, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, colName)
	}
	index := map[string]int{}
	for i, h := range rows[0] {
		key := NormalizeHeader(h)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	for _, req := range []string{colName, colGPA} {
		if _, ok := index[req]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, req)
		}
	}
	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	students := make([]studygroup.Student, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if blank(row) {
			continue
		}
		raw := cell(row, colGPA)
		gpa, err := ParseGPA(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d %q", ErrInvalidGPA, n+2, raw)
		}
		students = append(students, studygroup.Student{
			Name:  cell(row, colName),
			GPA:   gpa,
			Major: cell(row, colMajor),
			Minor: cell(row, colMinor),
		})
	}
	return students, nil
}

// ParseGPA parses a GPA cell. A decimal comma is accepted.
func ParseGPA(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// GroupLabel is the exported label of a group.
func GroupLabel(id int) string {
	return fmt.Sprintf("Kelompok %d", id)
}

// Header is the column order of exported tables.
var Header = []string{"Nama", "IPK", "Major", "Minor", "Nilai_Perminatan", "Fuzzy_IPK", "Fuzzy_Total", "Gabungan", "Kelompok"}

// exportRows lists every record in group order, then member order.
func exportRows(res *studygroup.Result) [][]any {
	var rows [][]any
	for _, g := range res.Groups {
		for _, m := range g.Members {
			rows = append(rows, []any{
				m.Name, m.GPA, m.Major, m.Minor,
				m.InterestScore, m.FuzzyGPA, m.FuzzyTotal, m.RankScore,
				GroupLabel(g.ID),
			})
		}
	}
	return rows
}
