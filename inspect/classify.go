package inspect

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dude333/sheetpeek/decode"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Keywords shorter than this are never matched approximately.
const minFuzzyLen = 5

//
// Keywords flags a column when one of its words is a substring of the
// column name, compared in lower case and without diacritics.
//
type Keywords struct {
	words   []string
	exclude []string
	fuzzy   bool
}

//
// NewKeywords creates a classifier. Columns containing any 'exclude' word
// are never flagged. With 'approx' set, a word of the column name within
// one edit of a keyword also matches ("Adress" => "address").
//
func NewKeywords(words, exclude []string, approx bool) *Keywords {
	return &Keywords{
		words:   foldAll(words),
		exclude: foldAll(exclude),
		fuzzy:   approx,
	}
}

// Match returns the matching columns, in column order.
func (k *Keywords) Match(columns []string) (matches []string) {
	for _, c := range columns {
		if k.Matches(c) {
			matches = append(matches, c)
		}
	}
	return
}

// Matches reports whether a single column name is flagged.
func (k *Keywords) Matches(column string) bool {
	name := fold(column)
	for _, x := range k.exclude {
		if strings.Contains(name, x) {
			return false
		}
	}

	for _, w := range k.words {
		if strings.Contains(name, w) {
			return true
		}
	}

	if !k.fuzzy {
		return false
	}
	for _, part := range strings.FieldsFunc(name, notAlnum) {
		for _, w := range k.words {
			if utf8.RuneCountInString(w) < minFuzzyLen {
				continue
			}
			if fuzzy.LevenshteinDistance(part, w) <= 1 {
				return true
			}
		}
	}

	return false
}

func fold(s string) string {
	return strings.ToLower(decode.RemoveDiacritics(strings.TrimSpace(s)))
}

func foldAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = fold(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func notAlnum(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
