package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dude333/sheetpeek"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Mode selects what is reported for each file.
type Mode int

const (
	// SampleMode reports the columns and the first record.
	SampleMode Mode = iota
	// ScanMode reports the columns and the customer fields.
	ScanMode
)

// Writer reports the inspection of a list of files.
type Writer interface {
	Begin(path string) error
	Result(res *Result) error
	Failure(path string, err error) error
	End() error
}

// NewWriter returns the writer for the format (text|yaml).
func NewWriter(format string, out io.Writer, mode Mode) (Writer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return NewText(out, mode), nil
	case "yaml", "yml":
		return NewYAML(out, mode), nil
	}
	return nil, errors.Errorf("unknown format %q (text|yaml)", format)
}

//
// Message describes a failure the way the text report prints it. Only
// legacy files, read with more than one strategy, get the "Could not read"
// line; other decode failures are reported as analysis errors.
//
func Message(mode Mode, path string, err error) string {
	var de *sheetpeek.DecodeError
	switch {
	case errors.Is(err, sheetpeek.ErrNotFound):
		return "File not found."
	case mode == SampleMode:
		return fmt.Sprintf("Error reading file: %v", err)
	case errors.As(err, &de) && sheetpeek.FormatOf(path) == sheetpeek.Legacy:
		return fmt.Sprintf("Could not read %s as %s.", path, alternatives(de.Strategies))
	}
	return fmt.Sprintf("Error analyzing %s: %v", path, err)
}

// Status is a short code for the outcome of an inspection.
func Status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, sheetpeek.ErrNotFound):
		return "not_found"
	case errors.Is(err, sheetpeek.ErrUnreadable):
		return "unreadable"
	}
	return "error"
}

// alternatives turns [xls html] into "XLS or HTML".
func alternatives(names []string) string {
	up := make([]string, len(names))
	for i, n := range names {
		up[i] = strings.ToUpper(n)
	}
	if len(up) < 2 {
		return strings.Join(up, "")
	}
	return strings.Join(up[:len(up)-1], ", ") + " or " + up[len(up)-1]
}

/* ------- text ------- */

// Text writes the plain text report.
type Text struct {
	out  io.Writer
	mode Mode
	err  error // first write error
}

// NewText creates a text writer.
func NewText(out io.Writer, mode Mode) *Text {
	return &Text{out: out, mode: mode}
}

func (t *Text) Begin(path string) error {
	if t.mode == ScanMode {
		t.printf("\n--- Analyzing: %s ---\n", sheetpeek.Basename(path))
	}
	return t.err
}

func (t *Text) Result(res *Result) error {
	t.printf("Columns found:\n")
	for _, c := range res.Columns() {
		t.printf("- %s\n", c)
	}

	switch t.mode {
	case SampleMode:
		t.printf("\nSample Data (Row 0):\n")
		rec := res.Sample()
		if rec == nil {
			t.printf("(no data rows)\n")
		}
		for _, f := range rec {
			t.printf("  %s: %s\n", f.Column, f.Value)
		}
	case ScanMode:
		t.printf("Potential Customer Fields: %s\n", quoted(res.Matches))
	}

	return t.err
}

func (t *Text) Failure(path string, err error) error {
	t.printf("%s\n", Message(t.mode, path, err))
	return t.err
}

func (t *Text) End() error { return t.err }

func (t *Text) printf(format string, a ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.out, format, a...)
}

func quoted(list []string) string {
	if len(list) == 0 {
		return "(none)"
	}
	q := make([]string, len(list))
	for i, s := range list {
		q[i] = strconv.Quote(s)
	}
	return strings.Join(q, ", ")
}

/* ------- yaml ------- */

type entry struct {
	File           string        `yaml:"file"`
	Status         string        `yaml:"status"`
	Format         string        `yaml:"format,omitempty"`
	Source         string        `yaml:"source,omitempty"`
	Columns        []string      `yaml:"columns,omitempty"`
	Sample         yaml.MapSlice `yaml:"sample,omitempty"`
	CustomerFields []string      `yaml:"customer_fields,omitempty"`
	Error          string        `yaml:"error,omitempty"`
}

// YAML collects the results and writes them as one document on End.
type YAML struct {
	out     io.Writer
	mode    Mode
	entries []entry
}

// NewYAML creates a yaml writer.
func NewYAML(out io.Writer, mode Mode) *YAML {
	return &YAML{out: out, mode: mode}
}

func (y *YAML) Begin(path string) error { return nil }

func (y *YAML) Result(res *Result) error {
	e := entry{
		File:    res.Path,
		Status:  Status(nil),
		Format:  res.Format,
		Columns: res.Columns(),
	}
	if res.Frame != nil {
		e.Source = res.Frame.Source
	}

	switch y.mode {
	case SampleMode:
		for _, f := range res.Sample() {
			e.Sample = append(e.Sample, yaml.MapItem{Key: f.Column, Value: f.Value})
		}
	case ScanMode:
		e.CustomerFields = res.Matches
	}

	y.entries = append(y.entries, e)
	return nil
}

func (y *YAML) Failure(path string, err error) error {
	y.entries = append(y.entries, entry{
		File:   path,
		Status: Status(err),
		Error:  err.Error(),
	})
	return nil
}

func (y *YAML) End() error {
	doc := struct {
		Files []entry `yaml:"files"`
	}{Files: y.entries}

	b, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.Wrap(err, "yaml")
	}
	_, err = y.out.Write(b)
	return err
}
