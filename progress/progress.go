// Package progress prints the status of a batch on screen. It's similar
// to a logger, but with better formatting.
package progress

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Progress writes status lines, usually to os.Stderr. A nil *Progress
// prints nothing.
type Progress struct {
	out     io.Writer
	color   bool
	running []byte
}

// New creates a Progress writing to out. Colors are only used on the
// standard streams.
func New(out io.Writer) *Progress {
	return &Progress{out: out, color: out == os.Stdout || out == os.Stderr}
}

// Cursor shows or hides the terminal cursor.
func (p *Progress) Cursor(show bool) {
	if p == nil || !p.color {
		return
	}
	if show {
		p.output([]byte("\033[?25h"))
	} else {
		p.output([]byte("\033[?25l"))
	}
}

// Status prints a message without breaking the running line.
func (p *Progress) Status(format string, a ...interface{}) {
	p.interrupt(colorCyan, "[>] "+fmt.Sprintf(format, a...))
}

// Warning prints a warning without breaking the running line.
func (p *Progress) Warning(format string, a ...interface{}) {
	p.interrupt(colorYellow, "[!] "+fmt.Sprintf(format, a...))
}

// Running starts a line that ends with RunOK or RunFail.
func (p *Progress) Running(format string, a ...interface{}) {
	if p == nil {
		return
	}
	p.running = []byte("[ ] " + fmt.Sprintf(format, a...))
	p.output(p.running)
}

// RunOK closes the running line with a checkmark.
func (p *Progress) RunOK() {
	if p == nil {
		return
	}
	p.outputln("\r[✓]")
	p.running = p.running[:0]
}

// RunFail closes the running line with a x mark.
func (p *Progress) RunFail() {
	if p == nil {
		return
	}
	p.paint(colorRed)
	p.outputln("\r[✗]")
	p.running = p.running[:0]
	p.paint(colorReset)
}

/* ------- output ------- */

func (p *Progress) interrupt(color, msg string) {
	if p == nil {
		return
	}
	p.clearLine()
	p.paint(color)
	p.outputln(msg)
	p.paint(colorReset)

	if len(p.running) > 0 {
		p.output(p.running)
	}
}

func (p *Progress) paint(color string) {
	if p.color {
		p.output([]byte(color))
	}
}

func (p *Progress) clearLine() {
	if len(p.running) == 0 {
		return
	}
	buf := bytes.Repeat([]byte(" "), len(p.running)+2)
	buf[0] = byte('\r')
	buf[len(buf)-1] = byte('\r')
	p.output(buf)
}

func (p *Progress) output(buf []byte) {
	if p.out == nil {
		return
	}
	_, _ = p.out.Write(buf)
}

func (p *Progress) outputln(s string) {
	var buf []byte
	buf = append(buf, s...)
	if len(s) == 0 || s[len(s)-1] != '\n' {
		buf = append(buf, '\n')
	}
	p.output(buf)
}
