package decode

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//
// RemoveDiacritics transforms, for example, "žůžo" into "zuzo"
//
func RemoveDiacritics(original string) (result string) {
	isMn := func(r rune) bool {
		return unicode.Is(unicode.Mn, r) // Mn: nonspacing marks
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ = transform.String(t, original)

	return
}

//
// cleanCell collapses the whitespace of a cell (including non breaking
// spaces and line breaks) into single spaces.
//
func cleanCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// trimRow drops the empty cells at the end of a row.
func trimRow(row []string) []string {
	n := len(row)
	for n > 0 && row[n-1] == "" {
		n--
	}
	return row[:n]
}

//
// rowBuffer collects raw rows until the header and 'max' data rows are in.
// Blank rows are kept (NewFrame drops them) but not counted.
//
type rowBuffer struct {
	max    int
	rows   [][]string
	header bool
	data   int
}

// add appends a row and returns true when no more rows are needed.
func (b *rowBuffer) add(row []string) bool {
	b.rows = append(b.rows, row)
	if strings.TrimSpace(strings.Join(row, "")) != "" {
		if !b.header {
			b.header = true
		} else {
			b.data++
		}
	}
	return b.max > 0 && b.data >= b.max
}
