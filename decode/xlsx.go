package decode

import (
	"github.com/dude333/sheetpeek"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// XLSX reads the modern (Office Open XML) format.
type XLSX struct {
	Sheet string
}

func (XLSX) Name() string { return "xlsx" }

//
// Decode streams the rows of the sheet and stops as soon as the header
// and maxRows data rows are read.
//
func (x XLSX) Decode(path string, maxRows int) (*sheetpeek.Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx open")
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, sheetpeek.ErrEmptySheet
		}
		sheet = list[0]
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "sheet %s", sheet)
	}
	defer rows.Close()

	buf := rowBuffer{max: maxRows}
	for rows.Next() {
		cols, err := rows.Columns()
		if err != nil {
			return nil, errors.Wrapf(err, "sheet %s", sheet)
		}
		for i := range cols {
			cols[i] = cleanCell(cols[i])
		}
		if buf.add(cols) {
			break
		}
	}
	if err := rows.Error(); err != nil {
		return nil, errors.Wrapf(err, "sheet %s", sheet)
	}

	return sheetpeek.NewFrame(buf.rows, maxRows)
}
