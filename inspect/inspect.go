package inspect

import (
	"io/ioutil"
	"os"

	"github.com/dude333/sheetpeek"
	"github.com/dude333/sheetpeek/decode"
	"github.com/dude333/sheetpeek/progress"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Options used by Inspect and Scan.
type Options struct {
	// MaxRows: data rows to read, 0 reads all of them
	MaxRows int
	// Sheet to read; the first one when empty
	Sheet string
	// Charset of legacy files (utf-8 when empty)
	Charset string
	// Classifier flags the customer columns (optional)
	Classifier sheetpeek.Classifier
	// Decoder overrides the strategies chosen by the file extension
	Decoder sheetpeek.Decoder
	// Log receives debug messages (optional)
	Log sheetpeek.Logger
	// Progress shows the batch status (optional)
	Progress *progress.Progress
}

// Result of the inspection of one file.
type Result struct {
	Path    string
	Name    string
	Format  string
	Frame   *sheetpeek.Frame
	Matches []string
}

// Columns in stored order.
func (r *Result) Columns() []string {
	if r.Frame == nil {
		return nil
	}
	return r.Frame.Columns
}

// Sample returns the first data row, or nil if the file has only a header.
func (r *Result) Sample() []sheetpeek.Field {
	return r.Frame.Record(0)
}

//
// Inspect loads the file at path and returns its columns. The file is
// read with the strategies of its format, the first one that works wins.
//
func Inspect(path string, o Options) (*Result, error) {
	log := o.Log
	if log == nil {
		log = NewLogger(ioutil.Discard, false)
	}

	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(sheetpeek.ErrNotFound, path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "stat")
	}
	if st.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}
	log.Debug("%s: %s", sheetpeek.Basename(path), humanize.Bytes(uint64(st.Size())))

	dec := o.Decoder
	if dec == nil {
		dec = decode.For(path, decode.Options{Sheet: o.Sheet, Charset: o.Charset, Log: log})
	}

	frame, err := dec.Decode(path, o.MaxRows)
	if err != nil {
		return nil, err
	}
	log.Debug("%s: %d columns, %d rows read as %s", sheetpeek.Basename(path), len(frame.Columns), len(frame.Rows), frame.Source)

	res := &Result{
		Path:   path,
		Name:   sheetpeek.Basename(path),
		Format: sheetpeek.FormatOf(path).String(),
		Frame:  frame,
	}
	if o.Classifier != nil {
		res.Matches = o.Classifier.Match(frame.Columns)
	}

	return res, nil
}

//
// Scan inspects the files in list order, each one to completion before
// the next. A failure is written out and the batch goes on; the number
// of failed files is returned. Files read by a fallback strategy are
// flagged on the progress line.
//
func Scan(paths []string, o Options, w Writer) (failed int, err error) {
	for _, path := range paths {
		if err = w.Begin(path); err != nil {
			return
		}

		o.Progress.Running("%s", sheetpeek.Basename(path))
		res, ierr := Inspect(path, o)
		if ierr != nil {
			failed++
			o.Progress.RunFail()
			if err = w.Failure(path, ierr); err != nil {
				return
			}
			continue
		}
		if src := res.Frame.Source; src != "" && src != res.Format {
			o.Progress.Warning("%s read as %s", res.Name, src)
		}
		o.Progress.RunOK()

		if err = w.Result(res); err != nil {
			return
		}
	}

	err = w.End()
	return
}
