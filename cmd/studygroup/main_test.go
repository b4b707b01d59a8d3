package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/studygroup"
)

const rosterCSV = `Nama,IPK,Major,Minor
Ani,4.0,Sistem Informasi,
Budi,3.0,Jaringan Komputer,
Citra,3.5,,
Dewi,2.0,,Sistem Informasi
Eko,3.8,,
Fajar,1.0,,
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "mahasiswa.csv")
	require.NoError(t, os.WriteFile(in, []byte(rosterCSV), 0o644))

	p := params{
		in:       in,
		interest: "Artificial Intelligence",
		size:     3,
		out:      filepath.Join(dir, "hasil.csv"),
		xlsx:     filepath.Join(dir, "hasil.xlsx"),
		chart:    filepath.Join(dir, "report.html"),
		db:       filepath.Join(dir, "runs.db"),
	}
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), p, &stdout))
	assert.Contains(t, stdout.String(), "Kelompok 2")

	csv, err := os.ReadFile(p.out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[1], "Ani,"))
	assert.True(t, strings.HasSuffix(lines[1], "Kelompok 1"))
	assert.True(t, strings.HasPrefix(lines[4], "Eko,"))

	for _, path := range []string{p.xlsx, p.chart} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	stdout.Reset()
	require.NoError(t, run(context.Background(), params{list: true, db: p.db}, &stdout))
	assert.Equal(t, 1, strings.Count(stdout.String(), "\n"))
	assert.Contains(t, stdout.String(), "students=6")
}

func TestRunRejectsInput(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	in := filepath.Join(dir, "mahasiswa.csv")
	require.NoError(t, os.WriteFile(in, []byte(rosterCSV), 0o644))
	ctx := context.Background()
	var stdout bytes.Buffer

	err := run(ctx, params{in: in, interest: "-- Pilih Mata Kuliah --", size: 3}, &stdout)
	assert.ErrorIs(t, err, studygroup.ErrMissingSelection)

	err = run(ctx, params{in: in, interest: "Basis Data", size: 3}, &stdout)
	assert.ErrorContains(t, err, "unknown interest")

	err = run(ctx, params{in: in, interest: "Sistem Informasi", size: 1}, &stdout)
	assert.ErrorIs(t, err, studygroup.ErrInvalidGroupSize)

	err = run(ctx, params{interest: "Sistem Informasi"}, &stdout)
	assert.Error(t, err)

	err = run(ctx, params{list: true}, &stdout)
	assert.Error(t, err)
}
