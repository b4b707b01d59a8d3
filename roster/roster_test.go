package roster

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yyyoichi/studygroup"
)

func TestReadCSV(t *testing.T) {
	test := []struct {
		name string
		data string
		exp  []studygroup.Student
	}{
		{"canonical",
			"Nama,IPK,Major,Minor\nAni,3.75,Artificial Intelligence,Sistem Informasi\nBudi,2.9,,\n",
			[]studygroup.Student{
				{Name: "Ani", GPA: 3.75, Major: "Artificial Intelligence", Minor: "Sistem Informasi"},
				{Name: "Budi", GPA: 2.9},
			}},
		{"messy_headers",
			"\ufeff nama ,  IPK,MAJOR , minor\n Citra , 3.1 , Jaringan Komputer ,\n",
			[]studygroup.Student{
				{Name: "Citra", GPA: 3.1, Major: "Jaringan Komputer"},
			}},
		{"reordered_and_extra_columns",
			"NIM,Minor,IPK,Nama\n001,Sistem Informasi,\"3,4\",Dewi\n",
			[]studygroup.Student{
				{Name: "Dewi", GPA: 3.4, Minor: "Sistem Informasi"},
			}},
		{"blank_rows_and_short_rows",
			"Nama,IPK,Major,Minor\n,,,\nEko,4\n",
			[]studygroup.Student{
				{Name: "Eko", GPA: 4},
			}},
		{"header_only",
			"Nama,IPK\n",
			[]studygroup.Student{}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.exp, got)
		})
	}
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Name,IPK\nAni,3\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadCSV(strings.NewReader("Nama,GPA\nAni,3\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadCSV(strings.NewReader("Nama,IPK\nAni,3\nBudi,tinggi\n"))
	assert.ErrorIs(t, err, ErrInvalidGPA)
	assert.Contains(t, err.Error(), "row 3")

	_, err = Read("students.txt", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestValidInterest(t *testing.T) {
	assert.True(t, ValidInterest("Artificial Intelligence"))
	assert.False(t, ValidInterest(""))
	assert.False(t, ValidInterest("   "))
	assert.False(t, ValidInterest(Placeholder))
}

func TestParseGPA(t *testing.T) {
	for in, exp := range map[string]float64{"3.5": 3.5, " 4 ": 4, "2,75": 2.75, "0": 0} {
		got, err := ParseGPA(in)
		require.NoError(t, err, in)
		assert.Equal(t, exp, got, in)
	}
	_, err := ParseGPA("")
	assert.Error(t, err)
}

func scenario(t *testing.T) *studygroup.Result {
	t.Helper()
	students := []studygroup.Student{
		{Name: "Ani", GPA: 4.0, Major: "Artificial Intelligence"},
		{Name: "Budi", GPA: 3.0, Minor: "Artificial Intelligence"},
		{Name: "Citra", GPA: 2.0},
	}
	res, err := studygroup.ComputeGroups(context.Background(), students, "Artificial Intelligence", 2)
	require.NoError(t, err)
	return res
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, scenario(t)))

	exp := strings.Join([]string{
		"Nama,IPK,Major,Minor,Nilai_Perminatan,Fuzzy_IPK,Fuzzy_Total,Gabungan,Kelompok",
		"Ani,4,Artificial Intelligence,,1,1,1,1,Kelompok 1",
		"Budi,3,,Artificial Intelligence,0.5,0.5,0.5,0.625,Kelompok 2",
		"Citra,2,,,0,0,0,0.25,Kelompok 2",
		"",
	}, "\n")
	assert.Equal(t, exp, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &studygroup.Result{}))
	assert.Equal(t, strings.Join(Header, ",")+"\n", buf.String())
}

func TestXLSXRoundTrip(t *testing.T) {
	res := scenario(t)
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, res))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{ResultSheet}, f.GetSheetList())
	label, err := f.GetCellValue(ResultSheet, "I4")
	require.NoError(t, err)
	assert.Equal(t, "Kelompok 2", label)

	students, err := Read("hasil.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, studygroup.Student{Name: "Ani", GPA: 4, Major: "Artificial Intelligence"}, students[0])
	assert.Equal(t, studygroup.Student{Name: "Budi", GPA: 3, Minor: "Artificial Intelligence"}, students[1])
}
