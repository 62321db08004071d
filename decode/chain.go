package decode

import (
	"github.com/dude333/sheetpeek"
	"github.com/pkg/errors"
)

// Strategy is one method of turning a file into a frame.
type Strategy interface {
	Name() string
	Decode(path string, maxRows int) (*sheetpeek.Frame, error)
}

// Options used to build a Chain.
type Options struct {
	// Sheet to read; the first one when empty
	Sheet string
	// Charset of legacy files
	Charset string
	// Log receives the fallback attempts (optional)
	Log sheetpeek.Logger
}

//
// Chain tries its strategies in order. The first frame returned wins;
// if every strategy fails, only the last failure is reported.
//
type Chain struct {
	Strategies []Strategy
	log        sheetpeek.Logger
}

//
// For returns the chain for the file format:
//   xlsx => [xlsx]
//   xls  => [xls, html]
//   html => [html]
//
func For(path string, o Options) *Chain {
	c := &Chain{log: o.Log}
	switch sheetpeek.FormatOf(path) {
	case sheetpeek.Legacy:
		c.Strategies = []Strategy{XLS{Sheet: o.Sheet, Charset: o.Charset}, HTML{}}
	case sheetpeek.Markup:
		c.Strategies = []Strategy{HTML{}}
	default:
		c.Strategies = []Strategy{XLSX{Sheet: o.Sheet}}
	}
	return c
}

// NewChain creates a chain with the given strategies.
func NewChain(log sheetpeek.Logger, strategies ...Strategy) *Chain {
	return &Chain{Strategies: strategies, log: log}
}

// Names of the strategies, in order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.Strategies))
	for i, s := range c.Strategies {
		names[i] = s.Name()
	}
	return names
}

// Decode implements sheetpeek.Decoder.
func (c *Chain) Decode(path string, maxRows int) (*sheetpeek.Frame, error) {
	if len(c.Strategies) == 0 {
		return nil, errors.Errorf("no decoder for %s", path)
	}

	var last error
	for i, s := range c.Strategies {
		f, err := try(s, path, maxRows)
		if err == nil {
			f.Source = s.Name()
			return f, nil
		}
		last = err
		if c.log != nil && i < len(c.Strategies)-1 {
			c.log.Debug("%s: %s failed (%v), trying %s", sheetpeek.Basename(path), s.Name(), err, c.Strategies[i+1].Name())
		}
	}

	return nil, &sheetpeek.DecodeError{Path: path, Strategies: c.Names(), Err: last}
}

// try runs a single strategy; a panic inside the decoder library is
// reported as a decode failure.
func try(s Strategy, path string, maxRows int) (f *sheetpeek.Frame, err error) {
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, errors.Errorf("%s decoder: %v", s.Name(), r)
		}
	}()

	f, err = s.Decode(path, maxRows)
	if err == nil && f == nil {
		err = errors.Errorf("%s decoder returned no data", s.Name())
	}
	return
}
