package sheetpeek

import (
	"path/filepath"
	"strings"
)

// Format of a spreadsheet file, chosen by its extension.
type Format int

const (
	// Modern is the XML based format (.xlsx, .xlsm). Unknown extensions
	// are treated as modern too.
	Modern Format = iota
	// Legacy is the old binary format (.xls).
	Legacy
	// Markup is an HTML table saved as a spreadsheet (.htm, .html).
	Markup
)

func (f Format) String() string {
	switch f {
	case Legacy:
		return "xls"
	case Markup:
		return "html"
	}
	return "xlsx"
}

// FormatOf returns the format expected for the file at path.
func FormatOf(path string) Format {
	switch Ext(path) {
	case ".xls":
		return Legacy
	case ".htm", ".html":
		return Markup
	}
	return Modern
}

// Ext returns the lowercase extension of path, including the dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(Basename(path)))
}

// Basename returns the last element of path. Both '/' and '\' are taken
// as separators so Windows paths read from a config file work anywhere.
func Basename(path string) string {
	path = strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// IsSpreadsheet returns true if path has an extension the tool can read.
func IsSpreadsheet(path string) bool {
	switch Ext(path) {
	case ".xlsx", ".xlsm", ".xls", ".htm", ".html":
		return true
	}
	return false
}
