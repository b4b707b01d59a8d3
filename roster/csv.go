package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yyyoichi/studygroup"
)

// Read picks the parser from the file extension of name: .csv or .xlsx.
func Read(name string, r io.Reader) ([]studygroup.Student, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// ReadCSV reads a comma separated table with a header row containing at least
// Nama and IPK. Header matching ignores case and surrounding whitespace.
func ReadCSV(r io.Reader) ([]studygroup.Student, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return parseRows(rows)
}

// WriteCSV writes the grouped table with Header as the first row.
func WriteCSV(w io.Writer, res *studygroup.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range exportRows(res) {
		rec := make([]string, len(row))
		for i, v := range row {
			switch v := v.(type) {
			case float64:
				rec[i] = strconv.FormatFloat(v, 'f', -1, 64)
			default:
				rec[i] = fmt.Sprint(v)
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
