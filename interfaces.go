package sheetpeek

// Decoder turns a spreadsheet file into a Frame holding at most maxRows
// data rows (0 means all rows).
type Decoder interface {
	Decode(path string, maxRows int) (*Frame, error)
}

// Classifier selects the columns that look like customer information.
type Classifier interface {
	Match(columns []string) []string
}
