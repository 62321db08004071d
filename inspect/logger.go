package inspect

import (
	"fmt"
	"io"
	"strings"
)

// Logger prints leveled messages. Debug lines only show in verbose mode.
type Logger struct {
	out     io.Writer
	verbose bool
}

// NewLogger creates a new Logger
func NewLogger(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// Debug for the decoding steps of each file.
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.verbose {
		l.print("DEBUG", format, v...)
	}
}

// Warn for a partial failure.
func (l *Logger) Warn(format string, v ...interface{}) {
	l.print("WARN", format, v...)
}

// Error message.
func (l *Logger) Error(format string, v ...interface{}) {
	l.print("ERROR", format, v...)
}

func (l *Logger) print(level, format string, v ...interface{}) {
	if l == nil || l.out == nil {
		return
	}
	msg := strings.TrimSuffix(fmt.Sprintf(format, v...), "\n")
	_, _ = fmt.Fprintf(l.out, "[%s] %s\n", level, msg)
}
