package decode

import (
	"github.com/dude333/sheetpeek"
	"github.com/extrame/xls"
	"github.com/pkg/errors"
)

const defaultCharset = "utf-8"

// A BIFF8 sheet has at most 256 columns.
const maxXLSCols = 256

// XLS reads the legacy binary (BIFF) format.
type XLS struct {
	Sheet   string
	Charset string
}

func (XLS) Name() string { return "xls" }

func (x XLS) Decode(path string, maxRows int) (*sheetpeek.Frame, error) {
	charset := x.Charset
	if charset == "" {
		charset = defaultCharset
	}

	wb, err := xls.Open(path, charset)
	if err != nil {
		return nil, errors.Wrap(err, "xls open")
	}
	if wb == nil {
		return nil, errors.New("xls open: no workbook stream")
	}

	sheet := x.sheet(wb)
	if sheet == nil {
		if x.Sheet != "" {
			return nil, errors.Errorf("sheet %s not found", x.Sheet)
		}
		return nil, sheetpeek.ErrEmptySheet
	}

	buf := rowBuffer{max: maxRows}
	for i := 0; i <= int(sheet.MaxRow); i++ {
		if buf.add(trimRow(xlsRow(sheet, i))) {
			break
		}
	}

	return sheetpeek.NewFrame(buf.rows, maxRows)
}

func (x XLS) sheet(wb *xls.WorkBook) *xls.WorkSheet {
	if x.Sheet == "" {
		if wb.NumSheets() == 0 {
			return nil
		}
		return wb.GetSheet(0)
	}
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil && s.Name == x.Sheet {
			return s
		}
	}
	return nil
}

//
// xlsRow returns the cells of row i, nil when the sheet has no such row
// (WorkSheet.Row panics on a missing row). Rows without a ROW record
// report no last column, so every column is read.
//
func xlsRow(sheet *xls.WorkSheet, i int) (cells []string) {
	defer func() {
		if recover() != nil {
			cells = nil
		}
	}()

	row := sheet.Row(i)
	if row == nil {
		return nil
	}

	width := row.LastCol() + 1
	if row.LastCol() <= 0 || width > maxXLSCols {
		width = maxXLSCols
	}
	cells = make([]string, width)
	for c := range cells {
		cells[c] = cleanCell(row.Col(c))
	}
	return cells
}
