package decode

import (
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dude333/sheetpeek"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// ErrNoTable is returned when the document has no <table>.
var ErrNoTable = errors.New("no table found")

// Larger colspans are taken as 1.
const maxColspan = 1000

//
// HTML reads the first <table> of a document. Several marketplaces export
// "xls" reports that are in fact HTML tables.
//
type HTML struct{}

func (HTML) Name() string { return "html" }

func (HTML) Decode(path string, maxRows int) (*sheetpeek.Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	// Uses the BOM or <meta charset> if any, otherwise guesses
	r, err := charset.NewReader(fh, "")
	if err != nil {
		return nil, errors.Wrap(err, "html charset")
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "html parse")
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	// The parser puts bare <tr> rows in a <tbody>, so this skips the rows
	// of nested tables
	rows := table.ChildrenFiltered("thead,tbody,tfoot").ChildrenFiltered("tr")

	buf := rowBuffer{max: maxRows}
	rows.EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		var cells []string
		tr.ChildrenFiltered("th,td").Each(func(_ int, td *goquery.Selection) {
			text := cleanCell(td.Text())
			for n := colspan(td); n > 0; n-- {
				cells = append(cells, text)
			}
		})
		return !buf.add(cells)
	})

	return sheetpeek.NewFrame(buf.rows, maxRows)
}

func colspan(td *goquery.Selection) int {
	v, ok := td.Attr("colspan")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 || n > maxColspan {
		return 1
	}
	return n
}
