package roster

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"github.com/yyyoichi/studygroup"
)

// ResultSheet is the sheet WriteXLSX stores the grouped table in.
const ResultSheet = "Hasil"

// ReadXLSX reads the first sheet of a workbook; the first row is the header.
func ReadXLSX(r io.Reader) (students []studygroup.Student, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("excel file does not contain any sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheet, err)
	}
	return parseRows(rows)
}

// WriteXLSX writes the grouped table to the ResultSheet of a new workbook.
func WriteXLSX(w io.Writer, res *studygroup.Result) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := f.SetSheetName("Sheet1", ResultSheet); err != nil {
		return err
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(ResultSheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range exportRows(res) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ResultSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
