package sheetpeek

import (
	"fmt"
	"strings"
)

// Frame is an in-memory table with named columns and ordered rows.
type Frame struct {
	Columns []string
	Rows    [][]string
	// Source is the decode strategy that produced the frame.
	Source string
}

// Field is one column/value pair of a record.
type Field struct {
	Column string
	Value  string
}

//
// NewFrame builds a frame from raw rows: the first non blank row is the
// header, blank rows are dropped and at most maxRows data rows are kept
// (0 keeps all of them).
//
func NewFrame(raw [][]string, maxRows int) (*Frame, error) {
	start := -1
	for i, r := range raw {
		if !blank(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrEmptySheet
	}

	header := raw[start]
	width := len(header)
	var rows [][]string
	for _, r := range raw[start+1:] {
		if maxRows > 0 && len(rows) >= maxRows {
			break
		}
		if blank(r) {
			continue
		}
		if len(r) > width {
			width = len(r)
		}
		rows = append(rows, r)
	}

	f := &Frame{Columns: ColumnNames(header, width)}
	f.Rows = make([][]string, len(rows))
	for i, r := range rows {
		f.Rows[i] = pad(r, width)
	}

	return f, nil
}

//
// ColumnNames trims the header cells, names the blank ones "Unnamed: <index>"
// and adds ".1", ".2"... to repeated names.
//
func ColumnNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		var name string
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n := seen[name]; n > 0 {
			cand := name
			for ; ; n++ {
				cand = fmt.Sprintf("%s.%d", name, n)
				if seen[cand] == 0 {
					break
				}
			}
			seen[name] = n + 1
			name = cand
		}
		seen[name]++
		names[i] = name
	}
	return names
}

// Record returns row i as ordered column/value pairs, or nil if there is
// no such row.
func (f *Frame) Record(i int) []Field {
	if f == nil || i < 0 || i >= len(f.Rows) {
		return nil
	}
	rec := make([]Field, len(f.Columns))
	for c, name := range f.Columns {
		rec[c] = Field{Column: name, Value: f.Rows[i][c]}
	}
	return rec
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
