package sheetpeek

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("file not found")
	ErrUnreadable = errors.New("unreadable file")
	ErrEmptySheet = errors.New("no header row")
)

// DecodeError is returned when every decode strategy for a file failed.
// Err holds the failure of the last strategy tried.
type DecodeError struct {
	Path       string
	Strategies []string
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: tried %s: %v", e.Path, strings.Join(e.Strategies, ", "), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports ErrUnreadable for any DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrUnreadable
}
